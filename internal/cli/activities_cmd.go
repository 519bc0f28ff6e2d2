package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newActivitiesCmd(app *App) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"suggest"},
		Short:   "Show suggested engagement activities, highest impact first",
		Long: "Show the activity suggester: metrics, the top activities by estimated\n" +
			"impact and the impact/effort matrix. Activities carry no priority, so\n" +
			"only category and neighborhood filters apply.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(app.Catalog())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSuggester(app, criteria))
			return nil
		},
	}

	flags.addCategory(cmd)
	flags.addNeighborhood(cmd)

	return cmd
}
