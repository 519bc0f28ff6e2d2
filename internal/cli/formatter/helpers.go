package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Empty-state lines shown when filters exclude every record.
const (
	NoRecordsMessage  = "No records match the selected filters."
	NoPartnersMessage = "No partners match the selected filters."
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToLower(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard is a compact box with a colored border, used for partner and
// activity cards.
func RenderCard(accent lipgloss.Color, title string, lines ...string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		PaddingLeft(1).
		PaddingRight(1)

	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return style.Render(heading + "\n" + strings.Join(lines, "\n"))
}

// MetricCard renders one headline number with its label underneath.
func MetricCard(label string, value any, accent lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Width(20).
		Align(lipgloss.Center)

	num := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(fmt.Sprint(value))
	return style.Render(num + "\n" + Dim(strings.ToLower(label)))
}

// MetricRow lays metric cards out side by side.
func MetricRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Field renders a "Label: value" line for cards.
func Field(label, value string) string {
	return Bold(label+":") + " " + value
}

// Repeat renders n copies of glyph, e.g. impact stars.
func Repeat(glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(glyph, n)
}

// EmptyState renders the explicit line shown in place of an empty table.
func EmptyState(msg string) string {
	return StyleYellow.Render(msg) + "\n"
}

// FormatCoord renders latitude and longitude with four decimals.
func FormatCoord(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}
