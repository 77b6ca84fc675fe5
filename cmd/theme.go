package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle|system]",
	Short: "Show or set the theme mode",
	Long: `Without arguments, show the active theme mode and its palette. With an
argument, set it.
"system" forgets the stored mode and follows the terminal appearance
(theme.system_appearance in the config file).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			if _, err := app.prefs.SetThemeMode(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set theme mode: %w", err)
			}
		}

		prefs := app.prefs.Snapshot()
		palette := app.theme.Palette().Variables()
		if jsonOutput {
			return json.NewEncoder(out).Encode(map[string]any{
				"theme_mode":    prefs.ThemeMode,
				"mode_override": prefs.ModeOverride,
				"palette":       palette,
			})
		}

		source := "stored"
		if !prefs.ModeOverride {
			source = "system"
		}
		fmt.Fprintf(out, "Theme mode: %s (%s)\n", prefs.ThemeMode, source)

		names := make([]string, 0, len(palette))
		for name := range palette {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(palette[name])).Render("●")
			fmt.Fprintf(out, "  %s %-18s %s\n", swatch, name, palette[name])
		}
		return nil
	},
}
