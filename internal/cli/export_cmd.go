package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wellow/internal/cli/formatter"
	"github.com/alexanderramin/wellow/internal/db"
	"github.com/alexanderramin/wellow/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	var verify bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current session to a SQLite snapshot file",
		Long: "Write the session's needs, partners and activities to a SQLite file\n" +
			"for offline inspection. Exporting the same session again replaces\n" +
			"its earlier snapshot in that file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := exportSession(cmd.Context(), app, out, verify)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s session %s to %s\n",
				formatter.StyleGreen.Render("Exported"), app.SessionID(), out)
			if verify {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %d needs, %d partners, %d activities\n",
					formatter.Dim("verified:"), counts.Needs, counts.Partners, counts.Activities)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Snapshot file to write (required)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Read back row counts after writing")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// exportSession writes the session to the database at path. With verify set
// it reads back the stored row counts and checks them against the session.
func exportSession(ctx context.Context, app *App, path string, verify bool) (repository.SnapshotCounts, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	conn, err := db.OpenDB(path)
	if err != nil {
		return repository.SnapshotCounts{}, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer conn.Close()

	data := app.Data()
	contents := &repository.SnapshotContents{
		Snapshot: repository.Snapshot{
			ID:         data.ID.String(),
			StartedAt:  data.StartedAt,
			ExportedAt: app.Now(),
		},
		Needs:      data.Needs,
		Partners:   data.Partners,
		Activities: data.Activities,
	}
	if err := repository.ExportSnapshot(ctx, db.NewSQLiteUnitOfWork(conn), contents); err != nil {
		return repository.SnapshotCounts{}, fmt.Errorf("exporting session %s: %w", data.ID, err)
	}

	want := repository.SnapshotCounts{
		Needs:      len(data.Needs),
		Partners:   len(data.Partners),
		Activities: len(data.Activities),
	}
	app.Log.Info("session exported",
		zap.String("session_id", data.ID.String()),
		zap.String("path", path),
		zap.Int("needs", want.Needs),
		zap.Int("partners", want.Partners),
		zap.Int("activities", want.Activities),
	)
	if !verify {
		return want, nil
	}

	got, err := repository.CountSnapshot(ctx, conn, data.ID.String())
	if err != nil {
		return repository.SnapshotCounts{}, fmt.Errorf("verifying snapshot: %w", err)
	}
	if got != want {
		return got, fmt.Errorf("verifying snapshot: stored %+v, session has %+v", got, want)
	}
	return got, nil
}
