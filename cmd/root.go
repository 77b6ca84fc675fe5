// Package cmd provides the CLI commands for the Timer application.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	jsonOutput bool

	// Duration flags override the configured initial inputs.
	durationFlag time.Duration
	hoursFlag    string
	minutesFlag  string
	secondsFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timer",
	Short: "Timer - an easy-to-use countdown timer",
	Long: `Timer is a terminal countdown timer with start/stop, reset and set
controls, English and Chinese display and six color schemes.

Run "timer" with no arguments to open the fullscreen timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runFullscreen,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.timer/timer.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().DurationVar(&durationFlag, "duration", 0, "Initial duration such as 25m or 1h30m (overrides config)")
	rootCmd.PersistentFlags().StringVar(&hoursFlag, "hours", "", "Initial hours (default from config)")
	rootCmd.PersistentFlags().StringVar(&minutesFlag, "minutes", "", "Initial minutes (default from config)")
	rootCmd.PersistentFlags().StringVar(&secondsFlag, "seconds", "", "Initial seconds (default from config)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("Timer\nVersion: {{.Version}}\nCommit: %s\nBuilt: %s\n", GitCommit, BuildDate))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(schemeCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}
