package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sp",
		Short:         "Study Planner CLI (sp): plan subjects, generate timetables, track progress",
		Long:          "sp (Study Planner CLI) manages your study commitments from the terminal: log in, save per-subject plans, request rule-based smart plans and AI weekly timetables, and follow your weekly progress.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newStudyCmd(app),
		newPlansCmd(app),
		newProgressCmd(app),
	)

	return rootCmd
}
