package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/adapters/mcp"
	"github.com/CrueChan/Timer/internal/domain"
)

// headlessDisplay drops frames; MCP clients poll get_status instead.
type headlessDisplay struct{}

func (headlessDisplay) Render(domain.Frame) {}

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server drives its own countdown and shares the stored preferences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol.
		fmt.Fprintln(os.Stderr, "Starting MCP server on stdio. Press Ctrl+C to stop.")

		ctx := setupSignalHandler()

		engine := newEngine(headlessDisplay{})
		defer engine.Close()

		server := mcp.NewServer(engine, app.prefs, Version, app.logger)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}
