package cmd

import (
	"fmt"
	"strings"

	"dersctl/pkg/tui"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the weekly courses of a class",
	Long:  `Print the courses of one class. Without --class, pick the class from a list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetString("class")
		class = strings.ToUpper(strings.TrimSpace(class))

		cfg := loadSettings()
		client := newScheduleClient(cfg)

		if class == "" {
			return tui.RunScheduleTUI(client, cfg.CollationTag(), cmd.OutOrStdout())
		}

		courses, err := tui.FetchWithSpinner(client, fmt.Sprintf("Fetching the schedule of %s...", class))
		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		tui.PrintClass(cmd.OutOrStdout(), courses, class)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("class", "c", "", "Class to show (e.g. 9A)")
}
