package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/studyplan-cli/internal/application"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteSignup) == application.RouteStudy {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already logged in. Run `sp logout` before creating another account.")
				return nil
			}

			signup := func(ctx context.Context) error {
				return app.gateway.Signup(ctx, name, email, password)
			}

			if err := runWithAuthSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", signup); err != nil {
				return fmt.Errorf("signup: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Log in with `sp login`.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
