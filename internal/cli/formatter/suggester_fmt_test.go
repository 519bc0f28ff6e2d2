package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rankedActivities(n int) []domain.Activity {
	out := make([]domain.Activity, 0, n)
	for i := 0; i < n; i++ {
		impact := 10 - i
		if impact < 1 {
			impact = 1
		}
		out = append(out, domain.Activity{
			NeedID:           i + 1,
			PartnerID:        i%3 + 1,
			Need:             "Need " + string(rune('A'+i)),
			Category:         domain.Categories()[i%3],
			PartnerName:      "Partner " + string(rune('A'+i%3)),
			Description:      "Activity " + string(rune('A'+i)),
			EstimatedImpact:  impact,
			EstimatedEffort:  3,
			FeasibilityScore: 5,
			Neighborhood:     "Signac",
		})
	}
	return out
}

func TestFormatSuggester_ShowsTopFiveCards(t *testing.T) {
	out := stripANSI(FormatSuggester(rankedActivities(7)))

	assert.Contains(t, out, "engagement activity suggester")
	assert.Contains(t, out, "possible activities")
	assert.Contains(t, out, "recommended activities")
	for _, name := range []string{"Activity A", "Activity E"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "Activity F", "only the top five get cards")
	assert.Contains(t, out, strings.Repeat("★", 10))
	assert.Contains(t, out, "activity impact matrix")
}

func TestFormatSuggester_Empty(t *testing.T) {
	out := stripANSI(FormatSuggester(nil))
	assert.Contains(t, out, NoRecordsMessage)
	assert.NotContains(t, out, "recommended activities")
}

func TestFormatImpactMatrix_CountsQuadrants(t *testing.T) {
	acts := []domain.Activity{
		{PartnerName: "Eco Montreuil", Need: "Recycling awareness", EstimatedImpact: 9, EstimatedEffort: 2},
		{PartnerName: "Club des Ainés", Need: "Language exchange", EstimatedImpact: 2, EstimatedEffort: 8},
	}
	out := stripANSI(FormatImpactMatrix(acts))

	assert.Contains(t, out, "quick win")
	assert.Contains(t, out, "avoid")
	assert.Contains(t, out, "Quick win")
	assert.Contains(t, out, "Recycling awareness")
	assert.Contains(t, out, "Club des Ainés")
}
