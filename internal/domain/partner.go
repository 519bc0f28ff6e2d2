package domain

import (
	"fmt"
	"strings"
)

// Partner is a local organization that can take on needs in its focus area.
type Partner struct {
	ID                  int
	Name                string
	Type                PartnerType
	FocusArea           FocusArea
	Address             string
	Website             string
	ContactPerson       string
	Latitude            float64
	Longitude           float64
	PreviousEngagements int
}

// CanAddress reports whether the partner is eligible for the given need.
func (p *Partner) CanAddress(n *Need) bool {
	return p.FocusArea.Covers(n.Category)
}

// WebsiteFor derives the placeholder website of a partner from its name:
// lowercased with spaces removed.
func WebsiteFor(name string) string {
	return fmt.Sprintf("https://www.%s.org", strings.ReplaceAll(strings.ToLower(name), " ", ""))
}
