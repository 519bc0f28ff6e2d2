package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNeedsCmd(app *App) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "needs",
		Short: "Show the local needs overview",
		Long: "Show headline metrics, the needs-by-category chart and the needs table.\n" +
			"Filters narrow by category, priority and neighborhood.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(app.Catalog())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderNeeds(app, criteria))
			return nil
		},
	}

	flags.addCategory(cmd)
	flags.addPriority(cmd)
	flags.addNeighborhood(cmd)

	return cmd
}
