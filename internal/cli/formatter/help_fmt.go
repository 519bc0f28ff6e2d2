package formatter

import (
	"fmt"
	"strings"
)

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToLower(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-28s %s\n", StyleGreen.Render(c[0]), StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatHelp renders the command reference shown by "help" in the command
// bar.
func FormatHelp() string {
	categories := []helpCategory{
		{
			title: "Views",
			commands: [][]string{
				{"1", "Local needs overview"},
				{"2", "Partner directory"},
				{"3", "Engagement activity suggester"},
				{"4", "Impact dashboard (mock metrics)"},
				{"tab", "Next page"},
				{"f", "Filter the current page"},
				{"r", "Reset filters, or redraw impact"},
				{"view <page>", "Switch page by name"},
			},
		},
		{
			title: "Commands",
			commands: [][]string{
				{"needs [--category ...]", "Print needs, filtered"},
				{"partners [--type ...]", "Print the partner directory"},
				{"activities [--neighborhood ...]", "Print suggested activities"},
				{"impact", "Print fresh impact metrics"},
				{"export --out <file>", "Write the session to SQLite"},
				{"reset", "Clear all filters"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this reference"},
				{"exit / quit", "Quit wellow"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Filter flags take comma-separated values; an empty value matches nothing."))
	return RenderBox("Commands", b.String())
}
