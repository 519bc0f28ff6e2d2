package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/summary"
)

const chartWidth = 30

// FormatNeedsOverview renders headline metrics, the needs-by-category chart
// and the detailed needs table for an already-filtered set of needs.
func FormatNeedsOverview(needs []domain.Need) string {
	var b strings.Builder

	s := summary.Needs(needs)
	b.WriteString(Header("local needs overview") + "\n")
	b.WriteString(MetricRow(
		MetricCard("total needs", s.Total, ColorYellow),
		MetricCard("high priority", s.HighPriority, ColorPink),
		MetricCard("neighborhoods", s.Neighborhoods, ColorGreen),
	) + "\n\n")

	if len(needs) == 0 {
		b.WriteString(EmptyState(NoRecordsMessage))
		return b.String()
	}

	b.WriteString(Header("needs by category") + "\n")
	var bars []Bar
	for _, c := range summary.CategoryCounts(needs) {
		bars = append(bars, Bar{Label: c.Category.String(), Value: c.Count, Color: CategoryColor(c.Category)})
	}
	b.WriteString(RenderBarChart(bars, chartWidth) + "\n")

	b.WriteString(Header("detailed needs") + "\n")
	b.WriteString(FormatNeedsTable(needs))
	return b.String()
}

// FormatNeedsTable renders one row per need.
func FormatNeedsTable(needs []domain.Need) string {
	if len(needs) == 0 {
		return EmptyState(NoRecordsMessage)
	}
	headers := []string{"#", "NEED", "CATEGORY", "PRIORITY", "NEIGHBORHOOD", "IMPACT", "IDENTIFIED"}
	rows := make([][]string, 0, len(needs))
	for _, n := range needs {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", n.ID)),
			Bold(n.Label),
			CategoryBadge(n.Category),
			PriorityPill(n.Priority),
			n.Neighborhood,
			fmt.Sprintf("%d", n.ImpactScore),
			Dim(n.IdentifiedDate.Format("2006-01-02")),
		})
	}
	return RenderTable(headers, rows)
}
