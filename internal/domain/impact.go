package domain

// ImpactMetrics is the mock analytics shown on the impact dashboard. None of
// these numbers relate to the session's needs, partners or activities.
type ImpactMetrics struct {
	TotalActivities      int
	Participants         int
	VolunteerHours       int
	PartnersEngaged      int
	NeighborhoodsReached int
	SatisfactionRate     float64

	Trend         []MonthlyParticipation
	ByCategory    []CategoryShare
	Neighborhoods []NeighborhoodEngagement
}

type MonthlyParticipation struct {
	Month        string
	Participants int
	Cumulative   int
}

type CategoryShare struct {
	Category   Category
	Activities int
}

type NeighborhoodEngagement struct {
	Neighborhood    string
	Activities      int
	EngagementScore int
}
