package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/studyplan-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteLogin) == application.RouteStudy {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already logged in. Run `sp study` to open the planner or `sp logout` first.")
				return nil
			}

			login := func(ctx context.Context) error {
				token, err := app.gateway.Login(ctx, email, password)
				if err != nil {
					return err
				}
				return app.session.SetCredential(ctx, token)
			}

			if err := runWithAuthSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", login); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
