package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a view on top of the current page, such as a form.
type pushViewMsg struct {
	view View
}

// replaceViewMsg swaps the current page for another.
type replaceViewMsg struct {
	view View
}

// cmdOutputMsg carries text printed by a command-bar command.
type cmdOutputMsg struct {
	output string
}

// refreshViewMsg tells every view on the stack to re-render from the
// session data with the current criteria.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a form completes or is cancelled. The
// appModel pops the form and runs nextCmd in one step.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Msg {
	return refreshViewMsg{}
}
