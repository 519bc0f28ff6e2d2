package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const partnerCardWidth = 52

// FormatPartnerDirectory renders the focus legend and one card per partner,
// two per row. Coordinates stand in for the map.
func FormatPartnerDirectory(partners []domain.Partner) string {
	var b strings.Builder
	b.WriteString(Header("partner directory") + "\n")

	if len(partners) == 0 {
		b.WriteString(EmptyState(NoPartnersMessage))
		return b.String()
	}

	b.WriteString(focusLegend() + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d partners", len(partners))) + "\n\n")

	cards := make([]string, 0, len(partners))
	for i := range partners {
		cards = append(cards, partnerCard(&partners[i]))
	}
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			b.WriteString(cards[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func partnerCard(p *domain.Partner) string {
	card := RenderCard(FocusColor(p.FocusArea), p.Name,
		Field("Type", p.Type.String()),
		Field("Focus", p.FocusArea.String()),
		Field("Address", p.Address),
		Field("Contact", p.ContactPerson),
		Field("Website", Dim(p.Website)),
		Field("Location", FormatCoord(p.Latitude, p.Longitude)),
		Field("Previous engagements", fmt.Sprintf("%d", p.PreviousEngagements)),
	)
	return lipgloss.NewStyle().Width(partnerCardWidth).Render(card)
}

func focusLegend() string {
	parts := make([]string, 0, len(domain.FocusAreas()))
	for _, f := range domain.FocusAreas() {
		swatch := lipgloss.NewStyle().Foreground(FocusColor(f)).Render("■")
		parts = append(parts, swatch+" "+f.String())
	}
	return strings.Join(parts, "   ")
}
