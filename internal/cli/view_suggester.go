package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// suggesterView ranks the matched activities by impact.
type suggesterView struct {
	page
}

func newSuggesterView(state *SharedState) *suggesterView {
	return &suggesterView{page: newPage(state, ViewSuggester, renderSuggester)}
}

func (v *suggesterView) ID() ViewID    { return ViewSuggester }
func (v *suggesterView) Title() string { return "Activity Suggester" }

func (v *suggesterView) ShortHelp() []key.Binding {
	return []key.Binding{keyFilter, keyReset, keyScroll, keyNext, keyPages}
}

func (v *suggesterView) Init() tea.Cmd {
	return v.load()
}

func (v *suggesterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (v *suggesterView) View() string {
	return v.view()
}
