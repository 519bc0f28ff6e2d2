package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter counts bumps; "b" schedules two bumps in a batch, "q" quits.
type counter struct {
	n      int
	width  int
	events []string
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.QuitMsg:
		c.events = append(c.events, "quit")
	case tea.KeyMsg:
		c.events = append(c.events, msg.String())
		switch msg.String() {
		case "b":
			bump := func() tea.Msg { return bumpMsg{} }
			return c, tea.Batch(bump, bump)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_InitAndBatch(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, 80, d.Model.(counter).width)
	assert.Equal(t, 1, d.Model.(counter).n)

	d.PressKey('b')
	assert.Equal(t, 3, d.Model.(counter).n)
}

func TestDriver_KeysAndQuit(t *testing.T) {
	d := New(t, counter{})
	d.Type("xy")
	d.PressTab()
	d.PressKey('q')
	d.PressKey('z') // dropped after quit

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"x", "y", "tab", "q", "quit"}, d.Model.(counter).events)
}

func TestDriver_SlowCmdIsAbandoned(t *testing.T) {
	d := New(t, counter{})
	block := make(chan struct{})
	defer close(block)

	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	d.run(func() tea.Msg { <-block; return bumpMsg{} }, 0)
	assert.Equal(t, 0, d.Model.(counter).n)
}
