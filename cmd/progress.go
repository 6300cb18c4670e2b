package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	progressrender "github.com/bnema/studyplan-cli/internal/adapters/render/progress"
	"github.com/bnema/studyplan-cli/internal/application"
)

func newProgressCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show this week's study progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteStudy) != application.RouteStudy {
				return errNotAuthenticated
			}

			hours, err := app.gateway.WeeklyProgress(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch weekly progress: %w", err)
			}

			output, err := progressrender.Render(hours, progressrender.RenderOptions{Goal: app.weeklyGoal})
			if err != nil {
				return fmt.Errorf("render weekly progress: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
