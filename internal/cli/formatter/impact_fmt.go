package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/domain"
)

// FormatImpactDashboard renders the mock impact metrics. The numbers are
// illustrative and unrelated to the session's records.
func FormatImpactDashboard(m domain.ImpactMetrics) string {
	var b strings.Builder

	b.WriteString(Header("impact dashboard") + "\n")
	b.WriteString(Dim("(conceptual visualization)") + "\n")
	b.WriteString(MetricRow(
		MetricCard("total activities", m.TotalActivities, ColorYellow),
		MetricCard("participants", m.Participants, ColorPink),
		MetricCard("volunteer hours", m.VolunteerHours, ColorGreen),
	) + "\n")
	b.WriteString(MetricRow(
		MetricCard("partners engaged", m.PartnersEngaged, ColorYellow),
		MetricCard("neighborhoods", m.NeighborhoodsReached, ColorPink),
		MetricCard("satisfaction rate", fmt.Sprintf("%.1f%%", m.SatisfactionRate), ColorGreen),
	) + "\n\n")

	b.WriteString(Header("participation trend") + "\n")
	trend := make([]Bar, 0, len(m.Trend))
	for _, p := range m.Trend {
		trend = append(trend, Bar{
			Label: p.Month,
			Value: p.Participants,
			Color: ColorYellow,
			Note:  fmt.Sprintf("cumulative %d", p.Cumulative),
		})
	}
	b.WriteString(RenderBarChart(trend, chartWidth) + "\n")

	b.WriteString(Header("activity category distribution") + "\n")
	shares := make([]Bar, 0, len(m.ByCategory))
	for _, c := range m.ByCategory {
		shares = append(shares, Bar{Label: c.Category.String(), Value: c.Activities, Color: CategoryColor(c.Category)})
	}
	b.WriteString(RenderBarChart(shares, chartWidth) + "\n")

	b.WriteString(Header("neighborhood impact") + "\n")
	hoods := make([]Bar, 0, len(m.Neighborhoods))
	for _, n := range m.Neighborhoods {
		hoods = append(hoods, Bar{
			Label: n.Neighborhood,
			Value: n.Activities,
			Color: ColorYellow,
			Note:  fmt.Sprintf("engagement %d/10", n.EngagementScore),
		})
	}
	b.WriteString(RenderBarChart(hoods, chartWidth))
	return b.String()
}
