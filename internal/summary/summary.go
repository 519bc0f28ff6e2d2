// Package summary derives the headline numbers each view shows over its
// filtered records. All functions are total: empty input yields zeros.
package summary

import "github.com/alexanderramin/wellow/internal/domain"

type NeedsSummary struct {
	Total         int
	HighPriority  int
	Neighborhoods int
}

type ActivitiesSummary struct {
	Total      int
	HighImpact int
	Partners   int
}

// CategoryCount is one bar of the needs-by-category chart.
type CategoryCount struct {
	Category domain.Category
	Count    int
}

func Needs(needs []domain.Need) NeedsSummary {
	s := NeedsSummary{Total: len(needs)}
	neighborhoods := make(map[string]struct{})
	for i := range needs {
		if needs[i].IsHighPriority() {
			s.HighPriority++
		}
		neighborhoods[needs[i].Neighborhood] = struct{}{}
	}
	s.Neighborhoods = len(neighborhoods)
	return s
}

// Activities counts activities, those with impact >= 7, and distinct
// partners involved.
func Activities(activities []domain.Activity) ActivitiesSummary {
	s := ActivitiesSummary{Total: len(activities)}
	partners := make(map[int]struct{})
	for i := range activities {
		if activities[i].IsHighImpact() {
			s.HighImpact++
		}
		partners[activities[i].PartnerID] = struct{}{}
	}
	s.Partners = len(partners)
	return s
}

// CategoryCounts returns one entry per category present, in catalog order.
func CategoryCounts(needs []domain.Need) []CategoryCount {
	counts := make(map[domain.Category]int)
	for i := range needs {
		counts[needs[i].Category]++
	}
	var out []CategoryCount
	for _, c := range domain.Categories() {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}

// QuadrantCount is one cell of the impact/effort matrix.
type QuadrantCount struct {
	Quadrant domain.Quadrant
	Count    int
}

// Quadrants returns all four matrix cells in fixed order, including empty
// ones.
func Quadrants(activities []domain.Activity) []QuadrantCount {
	counts := make(map[domain.Quadrant]int)
	for i := range activities {
		counts[activities[i].Quadrant()]++
	}
	out := make([]QuadrantCount, 0, len(domain.Quadrants()))
	for _, q := range domain.Quadrants() {
		out = append(out, QuadrantCount{Quadrant: q, Count: counts[q]})
	}
	return out
}
