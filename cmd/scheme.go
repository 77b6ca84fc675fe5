package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/theme"
)

// schemeCmd represents the scheme command
var schemeCmd = &cobra.Command{
	Use:   "scheme [name]",
	Short: "Show or set the color scheme",
	Long: `Without arguments, list the color schemes with a swatch and mark the
active one. With an argument, switch to the closest matching scheme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			scheme, err := app.prefs.SetColorScheme(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to set color scheme: %w", err)
			}
			fmt.Fprintf(out, "Color scheme set to %s\n", scheme)
			return nil
		}

		current := app.theme.Scheme()
		if jsonOutput {
			return json.NewEncoder(out).Encode(map[string]any{
				"color_scheme": current,
				"supported":    domain.SupportedColorSchemes,
			})
		}

		for _, scheme := range domain.SupportedColorSchemes {
			marker := " "
			if scheme == current {
				marker = "*"
			}
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SchemeColor(scheme))).Render("●")
			fmt.Fprintf(out, "%s %s %-7s %s\n", marker, swatch, scheme, theme.SchemeColor(scheme))
		}
		return nil
	},
}
