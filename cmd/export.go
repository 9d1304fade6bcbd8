package cmd

import (
	"fmt"
	"os"
	"strings"

	"dersctl/pkg/exporter"
	"dersctl/pkg/schedule"
	"dersctl/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weekly courses of a class to an ICS file",
	Long:  `Export the schedule of one class as weekly recurring calendar events. Courses whose time slot has no weekday and time range are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetString("class")
		output, _ := cmd.Flags().GetString("output")
		class = strings.ToUpper(strings.TrimSpace(class))

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		cfg := loadSettings()
		client := newScheduleClient(cfg)

		all, err := tui.FetchWithSpinner(client, fmt.Sprintf("Exporting schedule for class %s to %s...", class, output))
		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		courses := schedule.CoursesFor(all, class)
		if len(courses) == 0 {
			return fmt.Errorf("no courses found for class %s", class)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		n, err := exporter.GenerateICS(courses, file, exporter.Options{})
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		if skipped := len(courses) - n; skipped > 0 {
			logger.Warn("Skipped courses without a usable time slot", zap.String("class", class), zap.Int("skipped", skipped))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d of %d courses to %s\n", n, len(courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("class", "c", "", "Class to export (e.g. 9A)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.MarkFlagRequired("class")
}
