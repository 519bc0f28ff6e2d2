package cli

import "github.com/alexanderramin/wellow/internal/filter"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Criteria is the current filter selection. Views always apply it to
	// the full session data.
	Criteria filter.Criteria

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:      app,
		Criteria: defaultCriteria(app.Data()),
	}
}

// ResetCriteria restores the selection the dashboard opened with.
func (s *SharedState) ResetCriteria() {
	s.Criteria = defaultCriteria(s.App.Data())
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
