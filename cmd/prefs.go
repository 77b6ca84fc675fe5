package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/adapters/storage"
)

var showRaw bool

// prefsCmd groups the preference subcommands.
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show, export, import or clear stored preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showRaw {
			return showStored(cmd)
		}
		prefs := app.prefs.Snapshot()
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(prefs)
		}
		return storage.WritePreferencesYAML(cmd.OutOrStdout(), prefs)
	},
}

var prefsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export preferences as YAML (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()
			w = f
		}
		if err := storage.WritePreferencesYAML(w, app.prefs.Snapshot()); err != nil {
			return fmt.Errorf("failed to export preferences: %w", err)
		}
		if len(args) == 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "Preferences exported to %s\n", args[0])
		}
		return nil
	},
}

var prefsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import preferences from a YAML file",
	Long: `Import preferences from a YAML file written by "timer prefs export".
Unsupported values are skipped with a warning in the log.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()

		values, err := storage.ReadPreferencesYAML(f)
		if err != nil {
			return fmt.Errorf("failed to read preferences: %w", err)
		}
		applied, err := app.prefs.Import(cmd.Context(), values)
		if err != nil {
			return fmt.Errorf("failed to import preferences: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d preferences\n", applied, len(values))
		return nil
	},
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.prefs.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared")
		return nil
	},
}

// showStored prints the persisted key/value pairs in key order.
func showStored(cmd *cobra.Command) error {
	values, err := app.prefs.Stored(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonOutput {
		return json.NewEncoder(out).Encode(values)
	}
	if len(values) == 0 {
		fmt.Fprintln(out, "No stored preferences")
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s=%s\n", k, values[k])
	}
	return nil
}

func init() {
	prefsShowCmd.Flags().BoolVar(&showRaw, "raw", false, "Show the stored key/value pairs instead of the active preferences")
	prefsCmd.AddCommand(prefsShowCmd, prefsExportCmd, prefsImportCmd, prefsClearCmd)
}
