package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewNeeds ViewID = iota
	ViewPartners
	ViewSuggester
	ViewImpact
	ViewForm
)

// pageOrder is the tab order of the top-level pages.
var pageOrder = []ViewID{ViewNeeds, ViewPartners, ViewSuggester, ViewImpact}

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// newPageView builds the top-level view for id. Unknown ids fall back to
// the needs overview.
func newPageView(state *SharedState, id ViewID) View {
	switch id {
	case ViewPartners:
		return newPartnersView(state)
	case ViewSuggester:
		return newSuggesterView(state)
	case ViewImpact:
		return newImpactView(state)
	default:
		return newNeedsView(state)
	}
}

// nextPage returns the page after id in tab order, wrapping around.
func nextPage(id ViewID) ViewID {
	for i, p := range pageOrder {
		if p == id {
			return pageOrder[(i+1)%len(pageOrder)]
		}
	}
	return pageOrder[0]
}
