package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/summary"
	"github.com/charmbracelet/lipgloss"
)

// TopActivities is how many activity cards the suggester shows.
const TopActivities = 5

// FormatSuggester renders the activity suggester. ranked must already be
// sorted by estimated impact, highest first.
func FormatSuggester(ranked []domain.Activity) string {
	var b strings.Builder

	s := summary.Activities(ranked)
	b.WriteString(Header("engagement activity suggester") + "\n")
	b.WriteString(MetricRow(
		MetricCard("possible activities", s.Total, ColorYellow),
		MetricCard("high impact", s.HighImpact, ColorPink),
		MetricCard("partners involved", s.Partners, ColorGreen),
	) + "\n\n")

	if len(ranked) == 0 {
		b.WriteString(EmptyState(NoRecordsMessage))
		return b.String()
	}

	b.WriteString(Header("recommended activities") + "\n")
	top := ranked
	if len(top) > TopActivities {
		top = top[:TopActivities]
	}
	for i := range top {
		b.WriteString(activityCard(&top[i]) + "\n")
	}

	b.WriteString("\n" + Header("activity impact matrix") + "\n")
	b.WriteString(FormatImpactMatrix(ranked))
	return b.String()
}

func activityCard(a *domain.Activity) string {
	return RenderCard(CategoryColor(a.Category), a.Description,
		Field("Need", a.Need)+Dim("  ·  ")+Field("Partner", a.PartnerName),
		Field("Category", CategoryBadge(a.Category))+Dim("  ·  ")+Field("Neighborhood", a.Neighborhood),
		Field("Impact", StyleYellow.Render(Repeat("★", a.EstimatedImpact)))+
			Dim("  ·  ")+Field("Effort", StylePink.Render(Repeat("⚡", a.EstimatedEffort))),
	)
}

// FormatImpactMatrix renders the four quadrant counts followed by every
// activity with its scores.
func FormatImpactMatrix(activities []domain.Activity) string {
	if len(activities) == 0 {
		return EmptyState(NoRecordsMessage)
	}

	var b strings.Builder
	cells := make(map[domain.Quadrant]string)
	for _, q := range summary.Quadrants(activities) {
		cells[q.Quadrant] = quadrantCell(q)
	}
	grid := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells[domain.QuadrantQuickWin], cells[domain.QuadrantMajorProject]),
		lipgloss.JoinHorizontal(lipgloss.Top, cells[domain.QuadrantFillIn], cells[domain.QuadrantAvoid]),
	)
	b.WriteString(Dim("impact ↑  effort →") + "\n")
	b.WriteString(grid + "\n\n")

	headers := []string{"IMPACT", "EFFORT", "FEASIBILITY", "QUADRANT", "PARTNER", "NEED"}
	rows := make([][]string, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", a.EstimatedImpact),
			fmt.Sprintf("%d", a.EstimatedEffort),
			fmt.Sprintf("%d", a.FeasibilityScore),
			a.Quadrant().String(),
			a.PartnerName,
			lipgloss.NewStyle().Foreground(CategoryColor(a.Category)).Render(a.Need),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func quadrantCell(q summary.QuadrantCount) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorDim).
		Width(22).
		Align(lipgloss.Center)
	count := StyleYellow.Bold(true).Render(fmt.Sprintf("%d", q.Count))
	return style.Render(count + "\n" + Dim(strings.ToLower(q.Quadrant.String())))
}
