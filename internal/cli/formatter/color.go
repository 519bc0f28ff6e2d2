package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Wellow brand palette, lightened where the original is unreadable on a
// dark terminal.
var (
	ColorPink   = lipgloss.Color("#E91E63")
	ColorYellow = lipgloss.Color("#F9DD3E")
	ColorBlue   = lipgloss.Color("#7986CB")
	ColorGreen  = lipgloss.Color("#4CAF50")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorYellow
)

// Predefined lipgloss styles.
var (
	StylePink   = lipgloss.NewStyle().Foreground(ColorPink)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor maps a category to its chart color.
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryEnvironment:
		return ColorGreen
	case domain.CategorySocialInclusion:
		return ColorBlue
	case domain.CategorySkillsDevelopment:
		return ColorPink
	default:
		return ColorDim
	}
}

// FocusColor maps a focus area to its card accent. Multiple is yellow.
func FocusColor(f domain.FocusArea) lipgloss.Color {
	switch f {
	case domain.FocusEnvironment:
		return ColorGreen
	case domain.FocusSocialInclusion:
		return ColorBlue
	case domain.FocusSkillsDevelopment:
		return ColorPink
	case domain.FocusMultiple:
		return ColorYellow
	default:
		return ColorDim
	}
}

// CategoryBadge renders the category name in its color.
func CategoryBadge(c domain.Category) string {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(c.String())
}

// PriorityPill returns a colored priority indicator such as "● High".
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StylePink.Render("● High")
	case domain.PriorityMedium:
		return StyleYellow.Render("● Medium")
	case domain.PriorityLow:
		return StyleGreen.Render("● Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a lowercase section header with an underline.
func Header(text string) string {
	lower := strings.ToLower(text)
	line := strings.Repeat("─", lipgloss.Width(lower))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(lower), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
