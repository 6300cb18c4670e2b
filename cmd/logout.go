package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.IsAuthenticated() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}

			if err := app.session.ClearCredential(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
