// Package generation builds the synthetic needs and partners a session
// starts from, and the mock numbers on the impact dashboard.
package generation

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
)

// NeedCount is the number of needs generated per session.
const NeedCount = 15

const (
	maxNeedAgeDays         = 90
	maxImpactScore         = 10
	maxPreviousEngagements = 8
	maxStreetNumber        = 100
)

// Generator draws records from a catalog using an injected random source.
type Generator struct {
	cat *catalog.Catalog
	rng Rand
	now func() time.Time
}

// NewGenerator creates a Generator. now defaults to time.Now when nil.
func NewGenerator(cat *catalog.Catalog, rng Rand, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{cat: cat, rng: rng, now: now}
}

// GenerateNeeds returns NeedCount needs with IDs 1..NeedCount. Category and
// label are fixed by position; every other field is drawn independently.
func (g *Generator) GenerateNeeds() []domain.Need {
	categories := domain.Categories()
	today := truncateToDay(g.now())

	needs := make([]domain.Need, NeedCount)
	for i := range needs {
		needs[i] = domain.Need{
			ID:             i + 1,
			Label:          g.cat.NeedLabels[i%len(g.cat.NeedLabels)],
			Category:       categories[i%len(categories)],
			Priority:       Pick(g.rng, domain.Priorities()),
			Neighborhood:   Pick(g.rng, g.cat.Neighborhoods),
			IdentifiedDate: today.AddDate(0, 0, -IntBetween(g.rng, 1, maxNeedAgeDays)),
			ImpactScore:    IntBetween(g.rng, 1, maxImpactScore),
		}
	}
	return needs
}

// GeneratePartners returns one partner per catalog name, in catalog order,
// so names never repeat within a generation.
func (g *Generator) GeneratePartners() []domain.Partner {
	c := g.cat.Centroid
	partners := make([]domain.Partner, len(g.cat.PartnerNames))
	for i, name := range g.cat.PartnerNames {
		partners[i] = domain.Partner{
			ID:        i + 1,
			Name:      name,
			Type:      Pick(g.rng, domain.PartnerTypes()),
			FocusArea: Pick(g.rng, domain.FocusAreas()),
			Address: fmt.Sprintf("%d Rue %s",
				IntBetween(g.rng, 1, maxStreetNumber), Pick(g.rng, g.cat.Streets)),
			Website: domain.WebsiteFor(name),
			ContactPerson: fmt.Sprintf("%s %s",
				Pick(g.rng, g.cat.FirstNames), Pick(g.rng, g.cat.LastNames)),
			Latitude:            FloatBetween(g.rng, c.Latitude-c.Spread, c.Latitude+c.Spread),
			Longitude:           FloatBetween(g.rng, c.Longitude-c.Spread, c.Longitude+c.Spread),
			PreviousEngagements: IntBetween(g.rng, 0, maxPreviousEngagements),
		}
	}
	return partners
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
