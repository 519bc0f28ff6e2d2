package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImpactCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "impact",
		Short: "Show the impact dashboard (illustrative numbers, redrawn each run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderImpact(app))
			return nil
		},
	}
}
