package cli

import (
	"testing"

	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnNeeds(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewNeeds, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	screen := d.Screen()
	assert.Contains(t, screen, "wellow")
	assert.Contains(t, screen, "local needs overview")
	assert.Contains(t, screen, "[1 needs]")
	assert.NotContains(t, screen, "Loading...")
}

func TestTUI_TabCyclesPages(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	want := []struct {
		id     ViewID
		header string
	}{
		{ViewPartners, "partner directory"},
		{ViewSuggester, "engagement activity suggester"},
		{ViewImpact, "impact dashboard"},
		{ViewNeeds, "local needs overview"},
	}
	for _, w := range want {
		d.PressTab()
		assert.Equal(t, w.id, d.ActiveViewID())
		assert.Contains(t, d.Screen(), w.header)
		assert.Equal(t, 1, d.ViewStackLen())
	}
}

func TestTUI_NumberKeysJumpToPage(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('4')
	assert.Equal(t, ViewImpact, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "(conceptual visualization)")

	d.PressKey('2')
	assert.Equal(t, ViewPartners, d.ActiveViewID())

	d.PressKey('3')
	assert.Equal(t, ViewSuggester, d.ActiveViewID())

	d.PressKey('1')
	assert.Equal(t, ViewNeeds, d.ActiveViewID())
}

func TestTUI_PageSwitchKeepsSessionData(t *testing.T) {
	app := testApp(t)
	before := app.Data()
	d := NewTestDriver(t, app)

	d.PressTab()
	d.PressTab()
	d.PressKey('1')

	assert.Same(t, before, d.State().App.Data())
}

func TestTUI_FilterEverythingOutShowsEmptyState(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	applyFilter(d.State(), ViewNeeds, &filterSelection{})
	d.Send(refreshViewMsg{})
	assert.Contains(t, d.Screen(), formatter.NoRecordsMessage)

	d.PressKey('r')
	assert.NotContains(t, d.Screen(), formatter.NoRecordsMessage)
	assert.Equal(t, 3, d.State().Criteria.Priorities.Len())
}

func TestTUI_PartnerFilterEmptyState(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')

	applyFilter(d.State(), ViewPartners, &filterSelection{})
	d.Send(refreshViewMsg{})
	assert.Contains(t, d.Screen(), formatter.NoPartnersMessage)
}

func TestTUI_CriteriaShareAcrossPages(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	applyFilter(d.State(), ViewNeeds, &filterSelection{
		Categories:    []domain.Category{},
		Priorities:    domain.Priorities(),
		Neighborhoods: d.State().Criteria.Neighborhoods.Values(),
	})
	d.PressKey('3')
	assert.Contains(t, d.Screen(), formatter.NoRecordsMessage)
}

func TestTUI_FilterFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('f')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.Screen(), "Category")

	// Keys go to the form, not the global bindings.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewNeeds, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.LastOutput(), "Filters unchanged.")
}

func TestTUI_FilterFormTogglesCategory(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('f')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.PressKey('x') // deselect the first category
	d.PressEnter()  // category -> priority
	d.PressEnter()  // priority -> neighborhood
	d.PressEnter()  // submit

	require.Equal(t, ViewNeeds, d.ActiveViewID())
	c := d.State().Criteria
	assert.False(t, c.Categories.Allows(domain.CategoryEnvironment))
	assert.True(t, c.Categories.Allows(domain.CategorySocialInclusion))
	assert.Equal(t, 3, c.Priorities.Len())
}

func TestTUI_ImpactHasNoFilters(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('4')

	d.PressKey('f')
	assert.Equal(t, ViewImpact, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "This page has no filters.")
}

func TestTUI_CommandBarRunsSubcommand(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("needs --priority high")
	out := d.LastOutput()
	assert.Contains(t, out, "local needs overview")
	assert.NotContains(t, out, "● Low")
	assert.False(t, d.CmdBarFocused())
}

func TestTUI_CommandBarReportsFlagErrors(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("partners --type museum")
	assert.Contains(t, d.LastOutput(), "Error:")
	assert.Contains(t, d.LastOutput(), "local_business")
}

func TestTUI_CommandBarViewSwitchesPage(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("view suggester")
	assert.Equal(t, ViewSuggester, d.ActiveViewID())

	d.Command("view nowhere")
	assert.Contains(t, d.LastOutput(), `unknown page "nowhere"`)
}

func TestTUI_CommandBarHelpAndUnknown(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("help")
	assert.Contains(t, d.LastOutput(), "commands")

	d.Command("frobnicate")
	assert.Contains(t, d.LastOutput(), "Unknown command: frobnicate")
}

func TestTUI_OutputDismissedByKey(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("impact")
	require.NotEmpty(t, d.LastOutput())

	d.PressKey('x')
	assert.Empty(t, d.LastOutput())
	assert.Contains(t, d.Screen(), "local needs overview")
}

func TestTUI_ResetCommand(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	applyFilter(d.State(), ViewNeeds, &filterSelection{})

	d.Command("reset")
	assert.Equal(t, 3, d.State().Criteria.Categories.Len())
	assert.Contains(t, d.LastOutput(), "Filters cleared.")

	d.PressEsc()
	assert.Contains(t, d.Screen(), "needs by category")
	assert.NotContains(t, d.Screen(), formatter.NoRecordsMessage)
}

func TestTUI_Quit(t *testing.T) {
	t.Run("q", func(t *testing.T) {
		d := NewTestDriver(t, testApp(t))
		d.PressKey('q')
		assert.True(t, d.IsQuitting())
	})
	t.Run("ctrl+c", func(t *testing.T) {
		d := NewTestDriver(t, testApp(t))
		d.PressCtrlC()
		assert.True(t, d.IsQuitting())
	})
	t.Run("command", func(t *testing.T) {
		d := NewTestDriver(t, testApp(t))
		d.PressKey(':')
		d.Type("quit")
		d.PressEnter()
		assert.True(t, d.IsQuitting())
	})
}
