package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPartnersCmd(app *App) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Show the partner directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(app.Catalog())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPartners(app, criteria))
			return nil
		},
	}

	flags.addPartnerType(cmd)
	flags.addFocusArea(cmd)

	return cmd
}
