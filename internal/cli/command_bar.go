package cli

import (
	"strings"

	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptPlain = "wellow > "

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
	}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(promptPlain) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

func (c *commandBar) promptPrefix() string {
	return formatter.StylePink.Render("wellow") + " " + formatter.Dim("❯") + " "
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions offers completions for the word under the cursor:
// command names first, then flag names, then flag values. Suggestions are
// whole lines because textinput matches them against the full value.
func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")
	current := ""
	if !trailingSpace {
		current = parts[len(parts)-1]
		parts = parts[:len(parts)-1]
	}
	head := text[:len(text)-len(current)]

	var pool []string
	switch {
	case len(parts) == 0:
		pool = allCommandNames()
	case strings.ToLower(parts[0]) == "view" && len(parts) == 1:
		pool = pageNames()
	case strings.HasPrefix(parts[len(parts)-1], "--"):
		pool = flagValues(c.state, parts[len(parts)-1])
	default:
		pool = commandFlags()[strings.ToLower(parts[0])]
	}

	matches := filterSuggestions(pool, current)
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = head + m
	}
	c.input.SetSuggestions(lines)
}

func allCommandNames() []string {
	return []string{
		"needs", "partners", "activities", "impact", "export",
		"view", "reset", "clear", "help", "exit", "quit",
	}
}

func pageNames() []string {
	return []string{"needs", "partners", "suggester", "impact"}
}

// commandFlags lists the flags each one-shot command accepts.
func commandFlags() map[string][]string {
	return map[string][]string{
		"needs":      {"--category", "--priority", "--neighborhood"},
		"partners":   {"--type", "--focus"},
		"activities": {"--category", "--neighborhood"},
		"export":     {"--out", "--verify"},
	}
}

// flagValues returns the values a filter flag accepts.
func flagValues(state *SharedState, flag string) []string {
	switch flag {
	case "--category":
		return slugs(domain.Categories())
	case "--priority":
		return slugs(domain.Priorities())
	case "--type":
		return slugs(domain.PartnerTypes())
	case "--focus":
		return slugs(domain.FocusAreas())
	case "--neighborhood":
		return quoteAll(state.App.Catalog().Neighborhoods)
	}
	return nil
}

func slugs[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// quoteAll quotes values containing spaces so the suggestion survives
// splitShellArgs.
func quoteAll(vals []string) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		if strings.ContainsAny(v, " \t") {
			v = `"` + v + `"`
		}
		out[i] = v
	}
	return out
}

// filterSuggestions matches case-insensitively, ignoring opening quotes on
// both sides.
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.TrimLeft(strings.ToLower(prefix), `"'`)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.TrimLeft(strings.ToLower(s), `"'`), lp) {
			result = append(result, s)
		}
	}
	return result
}
