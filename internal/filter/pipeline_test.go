package filter

import (
	"testing"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/generation"
	"github.com/alexanderramin/wellow/internal/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNeeds() []domain.Need {
	return []domain.Need{
		{ID: 1, Category: domain.CategoryEnvironment, Priority: domain.PriorityHigh, Neighborhood: "Signac"},
		{ID: 2, Category: domain.CategorySocialInclusion, Priority: domain.PriorityLow, Neighborhood: "La Noue"},
		{ID: 3, Category: domain.CategorySkillsDevelopment, Priority: domain.PriorityMedium, Neighborhood: "Signac"},
		{ID: 4, Category: domain.CategoryEnvironment, Priority: domain.PriorityLow, Neighborhood: "Ruffins"},
	}
}

func samplePartners() []domain.Partner {
	return []domain.Partner{
		{ID: 1, Type: domain.PartnerSchool, FocusArea: domain.FocusEnvironment},
		{ID: 2, Type: domain.PartnerAssociation, FocusArea: domain.FocusMultiple},
		{ID: 3, Type: domain.PartnerSchool, FocusArea: domain.FocusSocialInclusion},
	}
}

func ids[T any](items []T, id func(T) int) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func needID(n domain.Need) int       { return n.ID }
func partnerID(p domain.Partner) int { return p.ID }

func TestNeeds_NilCriteriaPassesEverything(t *testing.T) {
	got := Needs(sampleNeeds(), Criteria{})
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got, needID))
}

func TestNeeds_AllDimensionsMustMatch(t *testing.T) {
	c := Criteria{
		Categories:    NewSet(domain.CategoryEnvironment, domain.CategorySkillsDevelopment),
		Priorities:    NewSet(domain.PriorityHigh, domain.PriorityMedium),
		Neighborhoods: NewSet("Signac"),
	}
	got := Needs(sampleNeeds(), c)
	assert.Equal(t, []int{1, 3}, ids(got, needID))
}

func TestNeeds_EmptySetFiltersEverythingOut(t *testing.T) {
	cases := map[string]Criteria{
		"categories":    {Categories: NewSet[domain.Category]()},
		"priorities":    {Priorities: NewSet[domain.Priority]()},
		"neighborhoods": {Neighborhoods: NewSet[string]()},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got := Needs(sampleNeeds(), c)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestPartners_TypeAndFocus(t *testing.T) {
	c := Criteria{
		PartnerTypes: NewSet(domain.PartnerSchool),
		FocusAreas:   NewSet(domain.FocusSocialInclusion, domain.FocusMultiple),
	}
	assert.Equal(t, []int{3}, ids(Partners(samplePartners(), c), partnerID))

	assert.Empty(t, Partners(samplePartners(), Criteria{FocusAreas: NewSet[domain.FocusArea]()}))
}

func TestActivities_IgnorePriority(t *testing.T) {
	acts := []domain.Activity{
		{NeedID: 1, Category: domain.CategoryEnvironment, Neighborhood: "Signac"},
		{NeedID: 2, Category: domain.CategorySocialInclusion, Neighborhood: "Signac"},
		{NeedID: 3, Category: domain.CategoryEnvironment, Neighborhood: "La Noue"},
	}
	c := Criteria{
		Categories:    NewSet(domain.CategoryEnvironment),
		Neighborhoods: NewSet("Signac", "La Noue"),
		// Activities carry no priority, so an empty priority set is irrelevant here.
		Priorities: NewSet[domain.Priority](),
	}
	got := Activities(acts, c)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].NeedID)
	assert.Equal(t, 3, got[1].NeedID)

	assert.Empty(t, Activities(acts, Criteria{Categories: NewSet[domain.Category]()}))
}

func TestFilter_Idempotent(t *testing.T) {
	cat := catalog.Default()
	for seed := uint64(1); seed <= 50; seed++ {
		rng := generation.NewRand(seed)
		g := generation.NewGenerator(cat, rng, func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) })
		needs := g.GenerateNeeds()
		partners := g.GeneratePartners()
		acts := matching.SuggestActivities(needs, partners, cat.ActivityPhrases, rng)

		c := Criteria{
			Categories:    NewSet(domain.CategoryEnvironment, domain.CategorySocialInclusion),
			Priorities:    NewSet(domain.PriorityHigh, domain.PriorityLow),
			Neighborhoods: NewSet(cat.Neighborhoods[:3]...),
			PartnerTypes:  NewSet(domain.PartnerSchool, domain.PartnerAssociation),
			FocusAreas:    NewSet(domain.FocusMultiple, domain.FocusEnvironment),
		}

		once := Needs(needs, c)
		assert.Equal(t, once, Needs(once, c))
		oncePartners := Partners(partners, c)
		assert.Equal(t, oncePartners, Partners(oncePartners, c))
		onceActs := Activities(acts, c)
		assert.Equal(t, onceActs, Activities(onceActs, c))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	needs := sampleNeeds()
	before := append([]domain.Need(nil), needs...)

	_ = Needs(needs, Criteria{Neighborhoods: NewSet("Ruffins")})

	assert.Equal(t, before, needs)
}

func TestFilter_RecomputedFromSource(t *testing.T) {
	needs := sampleNeeds()

	narrow := Needs(needs, Criteria{Neighborhoods: NewSet("Ruffins")})
	require.Len(t, narrow, 1)

	// Widening the selection again works because filtering starts from the
	// stored collection, not the previous result.
	wide := Needs(needs, Criteria{Neighborhoods: NewSet("Ruffins", "Signac")})
	assert.Equal(t, []int{1, 3, 4}, ids(wide, needID))
}

func TestDefaults(t *testing.T) {
	c := Defaults(sampleNeeds(), samplePartners())

	assert.Equal(t, domain.Categories(), c.Categories.Values())
	assert.Equal(t, domain.Priorities(), c.Priorities.Values())
	assert.Equal(t, []string{"La Noue", "Ruffins", "Signac"}, c.Neighborhoods.Values())
	assert.Equal(t, []domain.PartnerType{domain.PartnerAssociation, domain.PartnerSchool}, c.PartnerTypes.Values())
	assert.Equal(t, []domain.FocusArea{domain.FocusEnvironment, domain.FocusMultiple, domain.FocusSocialInclusion}, c.FocusAreas.Values())

	// Defaults select everything present.
	assert.Len(t, Needs(sampleNeeds(), c), 4)
	assert.Len(t, Partners(samplePartners(), c), 3)
}

func TestByImpact_StableDescending(t *testing.T) {
	acts := []domain.Activity{
		{NeedID: 1, EstimatedImpact: 4},
		{NeedID: 2, EstimatedImpact: 9},
		{NeedID: 3, EstimatedImpact: 4},
		{NeedID: 4, EstimatedImpact: 10},
	}
	got := ByImpact(acts)

	assert.Equal(t, []int{4, 2, 1, 3}, ids(got, func(a domain.Activity) int { return a.NeedID }))
	assert.Equal(t, 1, acts[0].NeedID, "input must not be reordered")
}

func TestTop(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Top(items, 5))
	assert.Equal(t, []int{1, 2}, Top([]int{1, 2}, 5))
	assert.Empty(t, Top(items, 0))
	assert.Empty(t, Top(items, -1))
	assert.Empty(t, Top([]int(nil), 5))
}
