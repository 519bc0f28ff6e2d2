package generation

import "github.com/alexanderramin/wellow/internal/domain"

// Ranges for the mock impact dashboard, inclusive.
var (
	TotalActivitiesRange      = [2]int{15, 30}
	ParticipantsRange         = [2]int{120, 350}
	VolunteerHoursRange       = [2]int{400, 1200}
	PartnersEngagedRange      = [2]int{8, 15}
	NeighborhoodsReachedRange = [2]int{4, 6}
	MonthlyParticipantsRange  = [2]int{15, 40}
	CategoryActivitiesRange   = [2]int{3, 10}
	NeighborhoodActivityRange = [2]int{1, 8}
	EngagementScoreRange      = [2]int{1, 10}
	SatisfactionRateRange     = [2]float64{80, 98}
)

// ImpactMetrics draws a fresh set of mock dashboard numbers on every call.
// Nothing here is derived from session data and nothing is cached.
func (g *Generator) ImpactMetrics() domain.ImpactMetrics {
	m := domain.ImpactMetrics{
		TotalActivities:      between(g.rng, TotalActivitiesRange),
		Participants:         between(g.rng, ParticipantsRange),
		VolunteerHours:       between(g.rng, VolunteerHoursRange),
		PartnersEngaged:      between(g.rng, PartnersEngagedRange),
		NeighborhoodsReached: between(g.rng, NeighborhoodsReachedRange),
		SatisfactionRate: roundTo(
			FloatBetween(g.rng, SatisfactionRateRange[0], SatisfactionRateRange[1]), 1),
	}

	cumulative := 0
	for _, month := range g.cat.Months {
		n := between(g.rng, MonthlyParticipantsRange)
		cumulative += n
		m.Trend = append(m.Trend, domain.MonthlyParticipation{
			Month:        month,
			Participants: n,
			Cumulative:   cumulative,
		})
	}

	for _, cat := range domain.Categories() {
		m.ByCategory = append(m.ByCategory, domain.CategoryShare{
			Category:   cat,
			Activities: between(g.rng, CategoryActivitiesRange),
		})
	}

	for _, n := range g.cat.Neighborhoods {
		m.Neighborhoods = append(m.Neighborhoods, domain.NeighborhoodEngagement{
			Neighborhood:    n,
			Activities:      between(g.rng, NeighborhoodActivityRange),
			EngagementScore: between(g.rng, EngagementScoreRange),
		})
	}

	return m
}

func between(rng Rand, r [2]int) int {
	return IntBetween(rng, r[0], r[1])
}
