package cmd

import (
	"fmt"
	"strings"

	"dersctl/pkg/config"
	"dersctl/pkg/tui"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dersctl configuration",
	Long:  "View or edit your local configuration settings (schedule sheet URL, accent color, class sort language).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setSource, _ := cmd.Flags().GetString("set-source")
		resetSource, _ := cmd.Flags().GetBool("reset-source")
		setColor, _ := cmd.Flags().GetString("set-color")
		setCollation, _ := cmd.Flags().GetString("set-collation")
		show, _ := cmd.Flags().GetBool("show")

		changed := false

		if resetSource {
			cfg.SourceURL = ""
			changed = true
		} else if setSource != "" {
			setSource = strings.TrimSpace(setSource)
			if err := tui.ValidateSourceURL(setSource); err != nil {
				return fmt.Errorf("invalid sheet URL %q: %w", setSource, err)
			}
			cfg.SourceURL = setSource
			changed = true
		}

		if setColor != "" {
			if strings.HasPrefix(setColor, "#") {
				if err := tui.ValidateHexColor(setColor); err != nil {
					return err
				}
			}
			cfg.AccentColor = setColor
			changed = true
		}

		if setCollation != "" {
			tag, err := language.Parse(setCollation)
			if err != nil {
				return fmt.Errorf("invalid language tag %q: %w", setCollation, err)
			}
			cfg.Collation = tag.String()
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved.")
		}

		if show || changed {
			fmt.Fprint(cmd.OutOrStdout(), tui.DescribeConfig(cfg))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-source", "s", "", "Set the published CSV URL of the schedule sheet")
	configCmd.Flags().Bool("reset-source", false, "Go back to the built-in schedule sheet")
	configCmd.Flags().String("set-color", "", "Set the accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().String("set-collation", "", "Set the language used to sort classes of the same grade (e.g. tr, en)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
