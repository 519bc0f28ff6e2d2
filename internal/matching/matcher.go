// Package matching pairs needs with eligible partners and turns each pairing
// into a suggested engagement activity.
package matching

import (
	"fmt"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/generation"
)

const (
	minScore = 1
	maxScore = 10
)

// Phrases maps each category to the activity phrases suggestions draw from.
// Every category that appears on a need must have at least one phrase.
type Phrases map[domain.Category][]string

// Eligible returns the partners whose focus area covers the need's category,
// in input order.
func Eligible(need *domain.Need, partners []domain.Partner) []domain.Partner {
	var out []domain.Partner
	for i := range partners {
		if partners[i].CanAddress(need) {
			out = append(out, partners[i])
		}
	}
	return out
}

// SuggestActivities emits at most one activity per need, in need order.
// A need with no eligible partner is skipped. The partner and phrase are
// drawn uniformly; impact, effort and feasibility are independent uniform
// draws in [1,10] and say nothing about match quality.
func SuggestActivities(needs []domain.Need, partners []domain.Partner, phrases Phrases, rng generation.Rand) []domain.Activity {
	var activities []domain.Activity
	for i := range needs {
		need := &needs[i]
		eligible := Eligible(need, partners)
		if len(eligible) == 0 {
			continue
		}

		partner := generation.Pick(rng, eligible)
		phrase := generation.Pick(rng, phrases[need.Category])

		activities = append(activities, domain.Activity{
			NeedID:           need.ID,
			PartnerID:        partner.ID,
			Need:             need.Label,
			Category:         need.Category,
			PartnerName:      partner.Name,
			Description:      Describe(partner.Name, phrase, need.Label),
			EstimatedImpact:  generation.IntBetween(rng, minScore, maxScore),
			EstimatedEffort:  generation.IntBetween(rng, minScore, maxScore),
			FeasibilityScore: generation.IntBetween(rng, minScore, maxScore),
			Neighborhood:     need.Neighborhood,
		})
	}
	return activities
}

// Describe renders the one-line activity suggestion.
func Describe(partnerName, phrase, needLabel string) string {
	return fmt.Sprintf("Partner with %s for a %s addressing '%s'", partnerName, phrase, needLabel)
}
