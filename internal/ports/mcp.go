package ports

import (
	"context"

	"github.com/CrueChan/Timer/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// PreferenceProvider exposes preference operations to the MCP server.
// This is a driven port (implemented by services layer).
type PreferenceProvider interface {
	Snapshot() domain.Preferences
	SetLanguage(ctx context.Context, input string) (domain.Language, error)
	SetThemeMode(ctx context.Context, input string) (domain.ThemeMode, error)
	SetColorScheme(ctx context.Context, input string) (domain.ColorScheme, error)
	Translate(key string) string
}
