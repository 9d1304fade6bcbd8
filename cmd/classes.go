package cmd

import (
	"fmt"

	"dersctl/pkg/schedule"
	"dersctl/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes found in the schedule",
	Long:  `Print every class identifier of the schedule sheet, ordered by grade.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadSettings()
		client := newScheduleClient(cfg)

		courses, err := tui.FetchWithSpinner(client, "Fetching the weekly schedule...")
		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		classes := schedule.ClassIDs(courses, cfg.CollationTag())
		logger.Debug("Class index built", zap.Int("courses", len(courses)), zap.Int("classes", len(classes)))

		if len(classes) == 0 {
			return fmt.Errorf("no classes found in the schedule")
		}

		for _, id := range classes {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
