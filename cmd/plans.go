package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/studyplan-cli/internal/application"
	"github.com/bnema/studyplan-cli/internal/domain"
)

func newPlansCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved study plans",
	}

	cmd.AddCommand(newPlansListCmd(app), newPlansAddCmd(app))

	return cmd
}

func newPlansListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved study plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteStudy) != application.RouteStudy {
				return errNotAuthenticated
			}

			plans, err := app.gateway.ListPlans(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch plans: %w", err)
			}

			if len(plans) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No plans yet")
				return nil
			}

			for _, plan := range plans {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s — %d hrs/week\n", plan.ID, plan.Subject, plan.HoursPerWeek)
			}

			return nil
		},
	}
}

func newPlansAddCmd(app *app) *cobra.Command {
	var subject string
	var hours int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteStudy) != application.RouteStudy {
				return errNotAuthenticated
			}

			input := domain.StudyPlanInput{Subject: subject, HoursPerWeek: hours}
			if err := input.ValidateBasic(); err != nil {
				return err
			}

			plan, err := app.gateway.CreatePlan(cmd.Context(), input.Subject, input.HoursPerWeek)
			if err != nil {
				return fmt.Errorf("save plan: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %d: %s — %d hrs/week\n", plan.ID, plan.Subject, plan.HoursPerWeek)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject name")
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours per week")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}
