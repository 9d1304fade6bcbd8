package cmd

import (
	"dersctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive schedule viewer",
	Long:  `Launch the Text User Interface to pick a class and browse its weekly courses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func runInteractive() error {
	cfg := loadSettings()

	return tui.RunTUI(tui.ViewerOptions{
		Source:      newScheduleClient(cfg),
		Logger:      logger,
		Collation:   cfg.CollationTag(),
		AccentColor: cfg.ResolvedAccentColor(),
	})
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
