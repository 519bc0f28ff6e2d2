package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/wellow/internal/domain"
)

var (
	needIDCounter    atomic.Int64
	partnerIDCounter atomic.Int64
)

// Need options
type NeedOption func(*domain.Need)

func WithCategory(c domain.Category) NeedOption {
	return func(n *domain.Need) {
		n.Category = c
	}
}

func WithPriority(p domain.Priority) NeedOption {
	return func(n *domain.Need) {
		n.Priority = p
	}
}

func WithNeighborhood(name string) NeedOption {
	return func(n *domain.Need) {
		n.Neighborhood = name
	}
}

func WithImpactScore(s int) NeedOption {
	return func(n *domain.Need) {
		n.ImpactScore = s
	}
}

func WithNeedID(id int) NeedOption {
	return func(n *domain.Need) {
		n.ID = id
	}
}

func NewTestNeed(label string, opts ...NeedOption) domain.Need {
	n := domain.Need{
		ID:             int(needIDCounter.Add(1)),
		Label:          label,
		Category:       domain.CategoryEnvironment,
		Priority:       domain.PriorityMedium,
		Neighborhood:   "Centre-ville",
		IdentifiedDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		ImpactScore:    5,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Partner options
type PartnerOption func(*domain.Partner)

func WithPartnerType(t domain.PartnerType) PartnerOption {
	return func(p *domain.Partner) {
		p.Type = t
	}
}

func WithFocusArea(f domain.FocusArea) PartnerOption {
	return func(p *domain.Partner) {
		p.FocusArea = f
	}
}

func WithPartnerID(id int) PartnerOption {
	return func(p *domain.Partner) {
		p.ID = id
	}
}

func NewTestPartner(name string, opts ...PartnerOption) domain.Partner {
	p := domain.Partner{
		ID:                  int(partnerIDCounter.Add(1)),
		Name:                name,
		Type:                domain.PartnerAssociation,
		FocusArea:           domain.FocusMultiple,
		Address:             "12 Rue de Paris, Montreuil",
		Website:             domain.WebsiteFor(name),
		ContactPerson:       "Marie Dubois",
		Latitude:            48.8634,
		Longitude:           2.4485,
		PreviousEngagements: 3,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithEstimatedImpact(i int) ActivityOption {
	return func(a *domain.Activity) {
		a.EstimatedImpact = i
	}
}

// NewTestActivity pairs a need with a partner the way the matcher does,
// with mid-range scores.
func NewTestActivity(n domain.Need, p domain.Partner, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		NeedID:           n.ID,
		PartnerID:        p.ID,
		Need:             n.Label,
		Category:         n.Category,
		PartnerName:      p.Name,
		Description:      p.Name + " could help with " + n.Label,
		EstimatedImpact:  5,
		EstimatedEffort:  5,
		FeasibilityScore: 5,
		Neighborhood:     n.Neighborhood,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
