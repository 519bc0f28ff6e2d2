package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/config"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/generation"
	"github.com/alexanderramin/wellow/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the process-wide dependencies used by CLI commands and the TUI.
// One App serves exactly one dashboard session.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	Now    func() time.Time

	// IsInteractive reports whether the bare "wellow" command should start
	// the TUI. Nil means never.
	IsInteractive func() bool

	catalog   *catalog.Catalog
	store     *session.Store
	sessionID uuid.UUID
}

// NewApp creates an App. The session is not generated until Open has run
// and something asks for Data.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Config:    cfg,
		Log:       log,
		Now:       time.Now,
		sessionID: uuid.New(),
	}
}

// Open loads and validates the catalog and prepares the session store.
// Calling Open again is a no-op, so commands run from inside the TUI keep
// the session the TUI started with.
func (a *App) Open(seed uint64, catalogPath string) error {
	if a.store != nil {
		return nil
	}

	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		cat = loaded
	}
	if err := cat.Check(); err != nil {
		return err
	}

	source := "embedded"
	if catalogPath != "" {
		source = catalogPath
	}
	a.Log.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("neighborhoods", len(cat.Neighborhoods)),
		zap.Int("partner_names", len(cat.PartnerNames)),
		zap.Uint64("seed", seed),
	)

	rng := generation.NewRand(seed)
	a.catalog = cat
	a.store = session.NewStore(session.NewBuilder(cat, rng, a.Now, a.Log))
	return nil
}

// Data returns the session's entities, generating them on first use.
func (a *App) Data() *session.Data {
	return a.store.GetOrCreate(a.sessionID)
}

// ImpactMetrics draws a fresh set of mock dashboard numbers.
func (a *App) ImpactMetrics() domain.ImpactMetrics {
	return a.store.Builder().ImpactMetrics()
}

// Catalog returns the catalog loaded by Open.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// SessionID identifies the dashboard session in logs and exports.
func (a *App) SessionID() uuid.UUID {
	return a.sessionID
}

// NewRootCmd creates the top-level "wellow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var seed uint64
	var catalogPath string

	root := &cobra.Command{
		Use:   "wellow",
		Short: "Civic engagement dashboard for local needs and partners",
		Long: "Wellow generates a sample set of neighborhood needs and partner\n" +
			"organizations, suggests engagement activities that match them, and\n" +
			"shows the result as an interactive dashboard.\n\n" +
			"Environment:\n" + config.Usage(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Open(seed, catalogPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			criteria := defaultCriteria(app.Data())
			fmt.Fprintln(cmd.OutOrStdout(), renderNeeds(app, criteria))
			fmt.Fprintln(cmd.OutOrStdout(), renderPartners(app, criteria))
			fmt.Fprintln(cmd.OutOrStdout(), renderSuggester(app, criteria))
			return nil
		},
	}

	root.PersistentFlags().Uint64Var(&seed, "seed", app.Config.Seed, "Random seed (0 seeds from the clock)")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", app.Config.CatalogPath, "Path to a catalog YAML file")

	root.AddCommand(
		newNeedsCmd(app),
		newPartnersCmd(app),
		newActivitiesCmd(app),
		newImpactCmd(app),
		newExportCmd(app),
		newDashboardCmd(app),
	)

	return root
}
