package cmd

import (
	"fmt"
	"os"

	"dersctl/pkg/config"
	"dersctl/pkg/logging"
	"dersctl/pkg/schedule"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose   bool
	logFile   string
	sourceURL string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dersctl",
	Short: "A CLI and TUI for the weekly class schedule",
	Long: `dersctl reads the weekly class schedule from its published spreadsheet
and shows the courses of a class, in the terminal or as an .ics calendar.

Run without arguments to start the interactive viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output := logFile
		// The viewer owns the terminal, keep log lines out of it
		if output == "" && isInteractive(cmd) {
			path, err := logging.DefaultLogPath()
			if err != nil {
				return err
			}
			output = path
		}

		var err error
		logger, err = logging.New(logging.Options{Verbose: verbose, OutputPath: output})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "interactive"
}

// loadSettings reads ~/.dersctl.json, falling back to defaults if it is unreadable
func loadSettings() *config.AppConfig {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Ignoring unreadable config", zap.Error(err))
		return &config.AppConfig{}
	}
	return cfg
}

// newScheduleClient builds a client for the --source flag, the saved source or the built-in sheet
func newScheduleClient(cfg *config.AppConfig) *schedule.Client {
	url := cfg.ResolvedSourceURL()
	if sourceURL != "" {
		url = sourceURL
	}
	logger.Debug("Using schedule source", zap.String("url", url))
	return schedule.NewClient(schedule.WithSourceURL(url))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default stderr, ~/.dersctl.log for the viewer)")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "source", "", "Published CSV URL to read instead of the saved or built-in sheet")
}
