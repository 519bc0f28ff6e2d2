package cli

import (
	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/filter"
	"github.com/alexanderramin/wellow/internal/session"
)

// Renderers shared by the one-shot commands and the TUI views. Each one
// filters from the full session data on every call.

func defaultCriteria(d *session.Data) filter.Criteria {
	return filter.Defaults(d.Needs, d.Partners)
}

func renderNeeds(app *App, c filter.Criteria) string {
	return formatter.FormatNeedsOverview(filter.Needs(app.Data().Needs, c))
}

func renderPartners(app *App, c filter.Criteria) string {
	return formatter.FormatPartnerDirectory(filter.Partners(app.Data().Partners, c))
}

func renderSuggester(app *App, c filter.Criteria) string {
	return formatter.FormatSuggester(filter.ByImpact(filter.Activities(app.Data().Activities, c)))
}

func renderImpact(app *App) string {
	return formatter.FormatImpactDashboard(app.ImpactMetrics())
}
