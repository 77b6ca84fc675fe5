package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration loaded from ~/.timer/config.toml. Edit the file
to change it; theme.system_appearance is picked up by a running timer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		cfg := app.config

		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"path":     path,
				"database": dbPath,
				"log":      config.GetLogPath(cfg),
				"config":   cfg,
			})
		}

		fields := initialFields()
		fmt.Fprintf(out, "  Config file:        %s\n", path)
		fmt.Fprintf(out, "  Database:           %s\n", dbPath)
		fmt.Fprintf(out, "  Log file:           %s (%s)\n", config.GetLogPath(cfg), cfg.Log.Level)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Initial duration:   %s\n", fields.Duration())
		fmt.Fprintf(out, "  Refresh interval:   %s\n", time.Duration(cfg.Timer.RefreshInterval))
		fmt.Fprintf(out, "  Keys:               start/stop %q, reset %q\n", cfg.Keys.Primary, cfg.Keys.Reset)
		fmt.Fprintf(out, "  System appearance:  %s\n", cfg.Theme.SystemAppearance)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Alert sound:        %s\n", onOff(cfg.Alert.Sound))
		fmt.Fprintf(out, "  Alert notification: %s\n", onOff(cfg.Alert.Notify))
		fmt.Fprintf(out, "  Alert pulse:        %s\n", time.Duration(cfg.Alert.Pulse))
		fmt.Fprintf(out, "  Beep:               %d x %s at %.0f Hz\n",
			cfg.Alert.BeepCount, time.Duration(cfg.Alert.BeepLength), cfg.Alert.BeepFrequency)
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
