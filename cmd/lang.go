package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
)

// langCmd represents the lang command
var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the display language",
	Long: `Without arguments, list the supported languages and mark the active one.
With an argument, switch to it. Codes (en, zh), locales (zh_CN) and
names (English, Chinese) are accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			current := app.localizer.Language()
			if jsonOutput {
				return json.NewEncoder(out).Encode(map[string]any{
					"language":  current,
					"supported": domain.SupportedLanguages,
				})
			}
			for _, lang := range domain.SupportedLanguages {
				marker := " "
				if lang == current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-3s %s\n", marker, lang, i18n.Translate(lang, i18n.KeyLanguageName))
			}
			return nil
		}

		lang, err := app.prefs.SetLanguage(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to set language: %w", err)
		}
		fmt.Fprintf(out, "Language set to %s (%s)\n", lang, i18n.Translate(lang, i18n.KeyLanguageName))
		return nil
	},
}
