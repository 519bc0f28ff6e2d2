package generation

import (
	"testing"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(catalog.Default(), NewRand(seed), func() time.Time { return testNow })
}

func TestGenerateNeeds_Cardinality(t *testing.T) {
	needs := newTestGenerator(1).GenerateNeeds()

	require.Len(t, needs, NeedCount)
	seen := make(map[int]bool)
	for i, n := range needs {
		assert.Equal(t, i+1, n.ID)
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}

func TestGenerateNeeds_CategoryCyclesByIndex(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		needs := newTestGenerator(seed).GenerateNeeds()
		counts := make(map[domain.Category]int)
		for _, n := range needs {
			// IDs 1,4,7,10,13 are Environment; 2,5,... Social Inclusion; 3,6,... Skills.
			assert.Equal(t, domain.Categories()[(n.ID-1)%3], n.Category, "seed %d need %d", seed, n.ID)
			counts[n.Category]++
		}
		for _, c := range domain.Categories() {
			assert.Equal(t, 5, counts[c])
		}
	}
}

func TestGenerateNeeds_LabelsFollowCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	needs := newTestGenerator(3).GenerateNeeds()
	for i, n := range needs {
		assert.Equal(t, cat.NeedLabels[i], n.Label)
	}
}

func TestGenerateNeeds_FieldRanges(t *testing.T) {
	cat := catalog.Default()
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for seed := uint64(1); seed <= 50; seed++ {
		for _, n := range newTestGenerator(seed).GenerateNeeds() {
			assert.True(t, n.Priority.Valid())
			assert.Contains(t, cat.Neighborhoods, n.Neighborhood)
			assert.GreaterOrEqual(t, n.ImpactScore, 1)
			assert.LessOrEqual(t, n.ImpactScore, 10)

			age := int(today.Sub(n.IdentifiedDate).Hours() / 24)
			assert.GreaterOrEqual(t, age, 1)
			assert.LessOrEqual(t, age, 90)
			assert.Zero(t, n.IdentifiedDate.Hour())
		}
	}
}

func TestGeneratePartners_OnePerCatalogName(t *testing.T) {
	cat := catalog.Default()
	partners := newTestGenerator(7).GeneratePartners()

	require.Len(t, partners, len(cat.PartnerNames))
	names := make(map[string]bool)
	for i, p := range partners {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, cat.PartnerNames[i], p.Name)
		assert.False(t, names[p.Name], "duplicate name %q", p.Name)
		names[p.Name] = true
	}
}

func TestGeneratePartners_FieldRanges(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		for _, p := range newTestGenerator(seed).GeneratePartners() {
			assert.True(t, p.Type.Valid())
			assert.True(t, p.FocusArea.Valid())
			assert.InDelta(t, 48.86, p.Latitude, 0.0201)
			assert.InDelta(t, 2.44, p.Longitude, 0.0201)
			assert.GreaterOrEqual(t, p.PreviousEngagements, 0)
			assert.LessOrEqual(t, p.PreviousEngagements, 8)
			assert.Regexp(t, `^\d{1,3} Rue .+$`, p.Address)
			assert.Regexp(t, `^\S+ \S+$`, p.ContactPerson)
			assert.Equal(t, domain.WebsiteFor(p.Name), p.Website)
		}
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	assert.Equal(t, a.GenerateNeeds(), b.GenerateNeeds())
	assert.Equal(t, a.GeneratePartners(), b.GeneratePartners())
}

func TestIntBetween_Bounds(t *testing.T) {
	rng := NewRand(9)
	hitLo, hitHi := false, false
	for i := 0; i < 2000; i++ {
		v := IntBetween(rng, 1, 10)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 10)
		hitLo = hitLo || v == 1
		hitHi = hitHi || v == 10
	}
	assert.True(t, hitLo, "lower bound never drawn")
	assert.True(t, hitHi, "upper bound never drawn")
	assert.Equal(t, 5, IntBetween(rng, 5, 5))
}
