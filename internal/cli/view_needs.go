package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// needsView shows headline metrics, the category chart and the needs table.
type needsView struct {
	page
}

func newNeedsView(state *SharedState) *needsView {
	return &needsView{page: newPage(state, ViewNeeds, renderNeeds)}
}

func (v *needsView) ID() ViewID    { return ViewNeeds }
func (v *needsView) Title() string { return "Local Needs" }

func (v *needsView) ShortHelp() []key.Binding {
	return []key.Binding{keyFilter, keyReset, keyScroll, keyNext, keyPages}
}

func (v *needsView) Init() tea.Cmd {
	return v.load()
}

func (v *needsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (v *needsView) View() string {
	return v.view()
}
