package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Bar is one labelled row of a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Color lipgloss.Color
	// Note is appended after the value, e.g. a secondary score.
	Note string
}

// RenderBar renders value as a bar scaled against max.
func RenderBar(value, max, width int, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled == 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

// RenderBarChart renders bars with aligned labels, scaled to the largest
// value.
func RenderBarChart(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}

	labelWidth, max := 0, 0
	for _, b := range bars {
		labelWidth = maxInt(labelWidth, lipgloss.Width(b.Label))
		max = maxInt(max, b.Value)
	}

	var sb strings.Builder
	for _, b := range bars {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		line := fmt.Sprintf("%s%s  %s %d", b.Label, pad, RenderBar(b.Value, max, width, b.Color), b.Value)
		if b.Note != "" {
			line += "  " + Dim(b.Note)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
