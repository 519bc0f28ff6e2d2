package matching

import (
	"testing"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/generation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstRand always picks the first option and the lowest value.
type firstRand struct{}

func (firstRand) IntN(int) int     { return 0 }
func (firstRand) Float64() float64 { return 0 }

func defaultPhrases() Phrases {
	return Phrases(catalog.Default().ActivityPhrases)
}

func TestSuggestActivities_EndToEndScenario(t *testing.T) {
	needs := []domain.Need{
		{ID: 1, Label: "Green space maintenance", Category: domain.CategoryEnvironment, Neighborhood: "Signac"},
		{ID: 2, Label: "Youth mentoring", Category: domain.CategorySocialInclusion, Neighborhood: "La Noue"},
		{ID: 3, Label: "Recycling awareness", Category: domain.CategoryEnvironment, Neighborhood: "Ruffins"},
	}
	partners := []domain.Partner{
		{ID: 1, Name: "Eco Montreuil", FocusArea: domain.FocusEnvironment},
	}

	got := SuggestActivities(needs, partners, defaultPhrases(), firstRand{})

	want := []domain.Activity{
		{
			NeedID: 1, PartnerID: 1,
			Need: "Green space maintenance", Category: domain.CategoryEnvironment,
			PartnerName:      "Eco Montreuil",
			Description:      "Partner with Eco Montreuil for a neighborhood cleanup addressing 'Green space maintenance'",
			EstimatedImpact:  1,
			EstimatedEffort:  1,
			FeasibilityScore: 1,
			Neighborhood:     "Signac",
		},
		{
			NeedID: 3, PartnerID: 1,
			Need: "Recycling awareness", Category: domain.CategoryEnvironment,
			PartnerName:      "Eco Montreuil",
			Description:      "Partner with Eco Montreuil for a neighborhood cleanup addressing 'Recycling awareness'",
			EstimatedImpact:  1,
			EstimatedEffort:  1,
			FeasibilityScore: 1,
			Neighborhood:     "Ruffins",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SuggestActivities mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggestActivities_NoMatchSkipsNeed(t *testing.T) {
	needs := []domain.Need{
		{ID: 1, Category: domain.CategorySkillsDevelopment},
		{ID: 2, Category: domain.CategoryEnvironment},
	}
	partners := []domain.Partner{
		{ID: 1, FocusArea: domain.FocusEnvironment},
		{ID: 2, FocusArea: domain.FocusSocialInclusion},
	}

	got := SuggestActivities(needs, partners, defaultPhrases(), generation.NewRand(1))

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].NeedID)
	for _, a := range got {
		assert.NotEqual(t, 1, a.NeedID)
	}
}

func TestSuggestActivities_NoPartnersNoActivities(t *testing.T) {
	needs := []domain.Need{{ID: 1, Category: domain.CategoryEnvironment}}
	assert.Empty(t, SuggestActivities(needs, nil, defaultPhrases(), generation.NewRand(1)))
}

func TestSuggestActivities_MultipleIsWildcard(t *testing.T) {
	needs := []domain.Need{
		{ID: 1, Category: domain.CategoryEnvironment},
		{ID: 2, Category: domain.CategorySocialInclusion},
		{ID: 3, Category: domain.CategorySkillsDevelopment},
	}
	partners := []domain.Partner{{ID: 9, Name: "Maison de Quartier", FocusArea: domain.FocusMultiple}}

	got := SuggestActivities(needs, partners, defaultPhrases(), generation.NewRand(2))

	require.Len(t, got, 3)
	for _, a := range got {
		assert.Equal(t, 9, a.PartnerID)
	}
}

// Property test over generated data: eligibility, referential integrity,
// category carry-over, score ranges and need ordering.
func TestSuggestActivities_EveryNeedGetsEligiblePartner(t *testing.T) {
	cat := catalog.Default()
	for seed := uint64(1); seed <= 200; seed++ {
		rng := generation.NewRand(seed)
		g := generation.NewGenerator(cat, rng, func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) })
		needs := g.GenerateNeeds()
		partners := g.GeneratePartners()

		needByID := make(map[int]domain.Need)
		for _, n := range needs {
			needByID[n.ID] = n
		}
		partnerByID := make(map[int]domain.Partner)
		for _, p := range partners {
			partnerByID[p.ID] = p
		}

		activities := SuggestActivities(needs, partners, Phrases(cat.ActivityPhrases), rng)

		lastNeed := 0
		for _, a := range activities {
			need, ok := needByID[a.NeedID]
			require.True(t, ok, "seed %d: unknown need %d", seed, a.NeedID)
			partner, ok := partnerByID[a.PartnerID]
			require.True(t, ok, "seed %d: unknown partner %d", seed, a.PartnerID)

			assert.True(t,
				partner.FocusArea == domain.FocusMultiple || string(partner.FocusArea) == string(need.Category),
				"seed %d: partner %d (%s) not eligible for need %d (%s)", seed, partner.ID, partner.FocusArea, need.ID, need.Category)
			assert.Equal(t, need.Category, a.Category)
			assert.Equal(t, need.Neighborhood, a.Neighborhood)
			assert.Equal(t, partner.Name, a.PartnerName)
			assert.Greater(t, a.NeedID, lastNeed, "seed %d: output not in need order", seed)
			lastNeed = a.NeedID

			for _, s := range []int{a.EstimatedImpact, a.EstimatedEffort, a.FeasibilityScore} {
				assert.GreaterOrEqual(t, s, 1)
				assert.LessOrEqual(t, s, 10)
			}
		}

		// Every need with at least one eligible partner gets exactly one activity.
		expected := 0
		for i := range needs {
			if len(Eligible(&needs[i], partners)) > 0 {
				expected++
			}
		}
		assert.Len(t, activities, expected, "seed %d", seed)
	}
}

func TestEligible_PreservesOrder(t *testing.T) {
	need := &domain.Need{Category: domain.CategorySocialInclusion}
	partners := []domain.Partner{
		{ID: 1, FocusArea: domain.FocusMultiple},
		{ID: 2, FocusArea: domain.FocusEnvironment},
		{ID: 3, FocusArea: domain.FocusSocialInclusion},
	}

	got := Eligible(need, partners)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t,
		"Partner with Collectif Vert for a support group addressing 'Language exchange'",
		Describe("Collectif Vert", "support group", "Language exchange"))
}
