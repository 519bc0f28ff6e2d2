package cli

import (
	"github.com/alexanderramin/wellow/internal/filter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// impactView shows mock metrics. They are drawn again on every load, unlike
// the session's entities.
type impactView struct {
	page
}

func newImpactView(state *SharedState) *impactView {
	return &impactView{page: newPage(state, ViewImpact, renderImpactPage)}
}

func (v *impactView) ID() ViewID    { return ViewImpact }
func (v *impactView) Title() string { return "Impact" }

func (v *impactView) ShortHelp() []key.Binding {
	return []key.Binding{keyRedraw, keyScroll, keyNext, keyPages}
}

func (v *impactView) Init() tea.Cmd {
	return v.load()
}

func (v *impactView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := v.update(msg); ok {
		return v, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyFilter):
			return v, startFilterCmd(v.state, v.id)
		case key.Matches(msg, keyRedraw):
			return v, v.load()
		}
	}
	return v, nil
}

func (v *impactView) View() string {
	return v.view()
}

func renderImpactPage(app *App, _ filter.Criteria) string {
	return renderImpact(app)
}
