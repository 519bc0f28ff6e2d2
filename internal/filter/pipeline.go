// Package filter narrows the session's stored collections to what the user
// selected. Every function takes the full collection and returns a new
// slice; callers always filter from the stored data, never from a previous
// result.
package filter

import (
	"slices"
	"sort"

	"github.com/alexanderramin/wellow/internal/domain"
)

// Criteria holds the selected values per dimension. Categories and
// Neighborhoods apply to needs and activities, Priorities to needs only
// (activities carry no priority), PartnerTypes and FocusAreas to partners.
type Criteria struct {
	Categories    *Set[domain.Category]
	Priorities    *Set[domain.Priority]
	Neighborhoods *Set[string]
	PartnerTypes  *Set[domain.PartnerType]
	FocusAreas    *Set[domain.FocusArea]
}

// Needs returns the needs passing category, priority and neighborhood.
func Needs(needs []domain.Need, c Criteria) []domain.Need {
	out := make([]domain.Need, 0, len(needs))
	for _, n := range needs {
		if c.Categories.Allows(n.Category) &&
			c.Priorities.Allows(n.Priority) &&
			c.Neighborhoods.Allows(n.Neighborhood) {
			out = append(out, n)
		}
	}
	return out
}

// Activities returns the activities passing category and neighborhood.
func Activities(activities []domain.Activity, c Criteria) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if c.Categories.Allows(a.Category) && c.Neighborhoods.Allows(a.Neighborhood) {
			out = append(out, a)
		}
	}
	return out
}

// Partners returns the partners passing partner type and focus area.
func Partners(partners []domain.Partner, c Criteria) []domain.Partner {
	out := make([]domain.Partner, 0, len(partners))
	for _, p := range partners {
		if c.PartnerTypes.Allows(p.Type) && c.FocusAreas.Allows(p.FocusArea) {
			out = append(out, p)
		}
	}
	return out
}

// Defaults returns the criteria the dashboard opens with: every category and
// priority, and the distinct neighborhoods, partner types and focus areas
// actually present in the data, sorted.
func Defaults(needs []domain.Need, partners []domain.Partner) Criteria {
	var neighborhoods []string
	for _, n := range needs {
		neighborhoods = append(neighborhoods, n.Neighborhood)
	}
	var types []domain.PartnerType
	var focus []domain.FocusArea
	for _, p := range partners {
		types = append(types, p.Type)
		focus = append(focus, p.FocusArea)
	}

	return Criteria{
		Categories:    NewSet(domain.Categories()...),
		Priorities:    NewSet(domain.Priorities()...),
		Neighborhoods: NewSet(sortedDistinct(neighborhoods)...),
		PartnerTypes:  NewSet(sortedDistinct(types)...),
		FocusAreas:    NewSet(sortedDistinct(focus)...),
	}
}

// ByImpact returns a copy sorted by estimated impact, highest first. Ties
// keep their input order.
func ByImpact(activities []domain.Activity) []domain.Activity {
	out := slices.Clone(activities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedImpact > out[j].EstimatedImpact
	})
	return out
}

// Top returns at most n leading elements.
func Top[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func sortedDistinct[T ~string](vals []T) []T {
	out := slices.Clone(vals)
	slices.Sort(out)
	return slices.Compact(out)
}
