package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// partnersView is the partner directory. Coordinates stand in for the map.
type partnersView struct {
	page
}

func newPartnersView(state *SharedState) *partnersView {
	return &partnersView{page: newPage(state, ViewPartners, renderPartners)}
}

func (v *partnersView) ID() ViewID    { return ViewPartners }
func (v *partnersView) Title() string { return "Partners" }

func (v *partnersView) ShortHelp() []key.Binding {
	return []key.Binding{keyFilter, keyReset, keyScroll, keyNext, keyPages}
}

func (v *partnersView) Init() tea.Cmd {
	return v.load()
}

func (v *partnersView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := v.update(msg); ok {
		return v, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyFilter):
			return v, startFilterCmd(v.state, v.id)
		case key.Matches(msg, keyReset):
			v.state.ResetCriteria()
			return v, refreshViews
		}
	}
	return v, nil
}

func (v *partnersView) View() string {
	return v.view()
}
