package cli

import (
	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/filter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pageRenderedMsg carries freshly rendered content for one page.
type pageRenderedMsg struct {
	id      ViewID
	content string
}

// page is the scrollable body shared by the four dashboard views. Content
// is rendered by a tea.Cmd from the full session data and the current
// criteria, then held in a viewport.
type page struct {
	state   *SharedState
	id      ViewID
	vp      viewport.Model
	content string
	loading bool
	render  func(app *App, c filter.Criteria) string
}

func newPage(state *SharedState, id ViewID, render func(app *App, c filter.Criteria) string) page {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = pageViewportKeyMap()
	vp.MouseWheelEnabled = true
	return page{
		state:   state,
		id:      id,
		vp:      vp,
		loading: true,
		render:  render,
	}
}

// load renders the page off the UI goroutine. The criteria are copied
// here; their sets are immutable.
func (p *page) load() tea.Cmd {
	app, c, id, render := p.state.App, p.state.Criteria, p.id, p.render
	return func() tea.Msg {
		return pageRenderedMsg{id: id, content: render(app, c)}
	}
}

// update handles messages common to every page. It reports whether msg
// was consumed.
func (p *page) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case pageRenderedMsg:
		if msg.id != p.id {
			return nil, false
		}
		p.loading = false
		p.content = msg.content
		p.vp.SetContent(msg.content)
		return nil, true

	case refreshViewMsg:
		return p.load(), true

	case tea.WindowSizeMsg:
		p.vp.Width = p.state.Width
		p.vp.Height = p.state.ContentHeight()
		return nil, true

	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		p.vp, cmd = p.vp.Update(msg)
		return cmd, isPageScrollKey(msg)
	}
	return nil, false
}

func (p *page) view() string {
	if p.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if p.state.Height == 0 {
		return p.content
	}
	return p.vp.View()
}

// pageViewportKeyMap leaves letter keys free for view shortcuts.
func pageViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func isPageScrollKey(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return true
	}
	km := pageViewportKeyMap()
	return key.Matches(keyMsg, km.PageDown, km.PageUp, km.HalfPageUp, km.HalfPageDown, km.Up, km.Down)
}

// Bindings shared by the page views.
var (
	keyFilter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	keyReset  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters"))
	keyRedraw = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw"))
	keyScroll = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll"))
	keyNext   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page"))
	keyPages  = key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "pages"))
)
