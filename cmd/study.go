package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/studyplan-cli/internal/adapters/tui/study"
	"github.com/bnema/studyplan-cli/internal/application"
)

var errNotAuthenticated = fmt.Errorf("not logged in: run `sp login` first")

func newStudyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Open the interactive study planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.guard.Resolve(application.RouteStudy) != application.RouteStudy {
				return errNotAuthenticated
			}

			p := tea.NewProgram(
				study.New(app.gateway, app.session, app.weeklyGoal),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("run study screen: %w", err)
			}

			screen, ok := finalModel.(study.Model)
			if !ok {
				return fmt.Errorf("unexpected final study model type %T", finalModel)
			}
			if screen.LoggedOut() {
				if err := screen.LogoutErr(); err != nil {
					return fmt.Errorf("logout: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			}

			return nil
		},
	}
}
