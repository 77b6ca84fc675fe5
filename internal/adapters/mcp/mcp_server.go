// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server *server.MCPServer
	timer  ports.TimerController
	prefs  ports.PreferenceProvider
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(timer ports.TimerController, prefs ports.PreferenceProvider, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		timer:  timer,
		prefs:  prefs,
		logger: logger.Named("mcp"),
	}

	s.server = server.NewMCPServer(
		"timer",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_status",
			mcp.WithDescription("Get the countdown state: phase, displayed clock, remaining time and control availability"),
		),
		s.handleGetStatus,
	)

	s.server.AddTool(
		mcp.NewTool(
			"toggle",
			mcp.WithDescription("Press the start/stop control: start when idle or paused, pause when running"),
		),
		s.handleToggle,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start",
			mcp.WithDescription("Start or resume the countdown"),
		),
		s.handleStart,
	)

	s.server.AddTool(
		mcp.NewTool(
			"stop",
			mcp.WithDescription("Pause the running countdown"),
		),
		s.handleStop,
	)

	s.server.AddTool(
		mcp.NewTool(
			"reset",
			mcp.WithDescription("Reset the countdown to the configured duration"),
		),
		s.handleReset,
	)

	setDurationTool := mcp.NewTool(
		"set_duration",
		mcp.WithDescription("Replace the duration inputs and set the countdown to them. Fails while the countdown runs."),
		mcp.WithNumber("hours", mcp.Description("Hours (default 0)")),
		mcp.WithNumber("minutes", mcp.Description("Minutes (default 0, values above 59 carry over)")),
		mcp.WithNumber("seconds", mcp.Description("Seconds (default 0, values above 59 carry over)")),
	)
	s.server.AddTool(setDurationTool, s.handleSetDuration)

	s.server.AddTool(
		mcp.NewTool(
			"get_preferences",
			mcp.WithDescription("Get the display language, theme mode and color scheme"),
		),
		s.handleGetPreferences,
	)

	setLanguageTool := mcp.NewTool(
		"set_language",
		mcp.WithDescription("Switch the display language. Accepts a code (en, zh) or a name (English, Chinese)."),
		mcp.WithString("language", mcp.Required(), mcp.Description("Language code or name")),
	)
	s.server.AddTool(setLanguageTool, s.handleSetLanguage)

	setThemeModeTool := mcp.NewTool(
		"set_theme_mode",
		mcp.WithDescription("Set the theme mode"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("light, dark, toggle, or system to follow the terminal appearance"),
		),
	)
	s.server.AddTool(setThemeModeTool, s.handleSetThemeMode)

	setColorSchemeTool := mcp.NewTool(
		"set_color_scheme",
		mcp.WithDescription("Set the accent color scheme"),
		mcp.WithString(
			"scheme",
			mcp.Required(),
			mcp.Description("blue, purple, green, orange, red or cyan"),
		),
	)
	s.server.AddTool(setColorSchemeTool, s.handleSetColorScheme)

	translateTool := mcp.NewTool(
		"translate",
		mcp.WithDescription("Look up a display string in the active language"),
		mcp.WithString("key", mcp.Required(), mcp.Description("Translation key, for example startButton")),
	)
	s.server.AddTool(translateTool, s.handleTranslate)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.logger.Info("mcp server starting")

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func frameData(f domain.Frame) map[string]any {
	return map[string]any{
		"session_id":        f.SessionID,
		"phase":             string(f.Phase),
		"display":           f.Clock.String(),
		"remaining_seconds": int64(f.Remaining.Seconds()),
		"total_seconds":     int64(f.Total.Seconds()),
		"progress":          f.Progress,
		"start_stop_label":  f.StartStopText,
		"alerting":          f.Controls.Alerting,
		"controls": map[string]bool{
			"start_stop_disabled": f.Controls.StartStopDisabled,
			"reset_disabled":      f.Controls.ResetDisabled,
			"set_disabled":        f.Controls.SetDisabled,
			"inputs_disabled":     f.Controls.InputsDisabled,
		},
	}
}

// handleGetStatus handles the get_status tool.
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(frameData(s.timer.Snapshot()))
}

// runAction applies op and reports the resulting frame. Engine refusals
// come back as tool errors, not protocol errors.
func (s *Server) runAction(name string, op func() error) (*mcp.CallToolResult, error) {
	if err := op(); err != nil {
		s.logger.Info("tool refused", zap.String("tool", name), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", name, err)), nil
	}
	return jsonResult(frameData(s.timer.Snapshot()))
}

func (s *Server) handleToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runAction("toggle", s.timer.Toggle)
}

func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runAction("start", s.timer.Start)
}

func (s *Server) handleStop(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runAction("stop", s.timer.Stop)
}

// handleReset refuses while the reset control is disabled, as the
// terminal view does.
func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runAction("reset", func() error {
		if s.timer.Snapshot().Controls.ResetDisabled {
			return domain.ErrControlDisabled
		}
		return s.timer.Reset()
	})
}

// handleSetDuration handles the set_duration tool.
func (s *Server) handleSetDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field := func(name string) string {
		v := int(request.GetFloat(name, 0))
		if v < 0 {
			v = 0
		}
		return strconv.Itoa(v)
	}
	fields := domain.DurationFields{
		Hours:   field("hours"),
		Minutes: field("minutes"),
		Seconds: field("seconds"),
	}

	return s.runAction("set_duration", func() error {
		if s.timer.Snapshot().Controls.SetDisabled {
			return domain.ErrControlDisabled
		}
		if err := s.timer.SetInputs(fields); err != nil {
			return err
		}
		return s.timer.Set()
	})
}

// handleGetPreferences handles the get_preferences tool.
func (s *Server) handleGetPreferences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.prefs.Snapshot())
}

func (s *Server) handleSetLanguage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("language")
	if err != nil {
		return mcp.NewToolResultError("language is required: " + err.Error()), nil
	}
	lang, err := s.prefs.SetLanguage(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set language: %v", err)), nil
	}
	return jsonResult(map[string]any{
		"language": lang,
		"name":     s.prefs.Translate(i18n.KeyLanguageName),
	})
}

func (s *Server) handleSetThemeMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required: " + err.Error()), nil
	}
	if _, err := s.prefs.SetThemeMode(ctx, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set theme mode: %v", err)), nil
	}
	return jsonResult(s.prefs.Snapshot())
}

func (s *Server) handleSetColorScheme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("scheme")
	if err != nil {
		return mcp.NewToolResultError("scheme is required: " + err.Error()), nil
	}
	if _, err := s.prefs.SetColorScheme(ctx, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set color scheme: %v", err)), nil
	}
	return jsonResult(s.prefs.Snapshot())
}

func (s *Server) handleTranslate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required: " + err.Error()), nil
	}
	return jsonResult(map[string]string{
		"key":   key,
		"value": s.prefs.Translate(key),
	})
}
