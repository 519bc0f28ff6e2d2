package cli

import (
	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/filter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wellowHuhTheme returns a huh theme in the dashboard palette.
func wellowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorPink).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// filterSelection receives the values picked in a filter form.
type filterSelection struct {
	Categories    []domain.Category
	Priorities    []domain.Priority
	Neighborhoods []string
	PartnerTypes  []domain.PartnerType
	FocusAreas    []domain.FocusArea
}

// newFilterForm builds the multi-select form for the filters that apply to
// page id. Options are the values present in the session data, preselected
// from the current criteria. Returns nil for pages without filters.
func newFilterForm(state *SharedState, id ViewID, sel *filterSelection) *huh.Form {
	all := defaultCriteria(state.App.Data())
	cur := state.Criteria

	var fields []huh.Field
	switch id {
	case ViewNeeds:
		fields = append(fields,
			multiSelect("Category", all.Categories.Values(), cur.Categories, &sel.Categories),
			multiSelect("Priority", all.Priorities.Values(), cur.Priorities, &sel.Priorities),
			multiSelect("Neighborhood", all.Neighborhoods.Values(), cur.Neighborhoods, &sel.Neighborhoods),
		)
	case ViewPartners:
		fields = append(fields,
			multiSelect("Partner type", all.PartnerTypes.Values(), cur.PartnerTypes, &sel.PartnerTypes),
			multiSelect("Focus area", all.FocusAreas.Values(), cur.FocusAreas, &sel.FocusAreas),
		)
	case ViewSuggester:
		fields = append(fields,
			multiSelect("Category", all.Categories.Values(), cur.Categories, &sel.Categories),
			multiSelect("Neighborhood", all.Neighborhoods.Values(), cur.Neighborhoods, &sel.Neighborhoods),
		)
	default:
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(wellowHuhTheme()).
		WithShowHelp(true)
	if state.Width > 0 {
		form = form.WithWidth(min(state.Width, 72))
	}
	return form
}

// multiSelect builds one filter field. Values allowed by current start
// selected; a nil current selects everything.
func multiSelect[T ~string](title string, all []T, current *filter.Set[T], value *[]T) *huh.MultiSelect[T] {
	*value = (*value)[:0]
	opts := make([]huh.Option[T], 0, len(all))
	for _, v := range all {
		selected := current.Allows(v)
		if selected {
			*value = append(*value, v)
		}
		opts = append(opts, huh.NewOption(optionLabel(v), v).Selected(selected))
	}
	return huh.NewMultiSelect[T]().
		Title(title).
		Value(value).
		Options(opts...)
}

func optionLabel[T ~string](v T) string {
	if s, ok := any(v).(interface{ String() string }); ok {
		return s.String()
	}
	return string(v)
}

// applyFilter stores the picked values for page id. An emptied field
// becomes an empty set, which filters every record out.
func applyFilter(state *SharedState, id ViewID, sel *filterSelection) {
	c := &state.Criteria
	switch id {
	case ViewNeeds:
		c.Categories = filter.NewSet(sel.Categories...)
		c.Priorities = filter.NewSet(sel.Priorities...)
		c.Neighborhoods = filter.NewSet(sel.Neighborhoods...)
	case ViewPartners:
		c.PartnerTypes = filter.NewSet(sel.PartnerTypes...)
		c.FocusAreas = filter.NewSet(sel.FocusAreas...)
	case ViewSuggester:
		c.Categories = filter.NewSet(sel.Categories...)
		c.Neighborhoods = filter.NewSet(sel.Neighborhoods...)
	}
}
