package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// App runs a countdown model as a bubbletea program.
type App struct {
	mu       sync.RWMutex
	program  *tea.Program
	model    tea.Model
	sink     *FrameSink
	fullview bool
}

// NewApp wraps the fullscreen model.
func NewApp(model Model, sink *FrameSink) *App {
	return &App{model: model, sink: sink, fullview: true}
}

// NewInlineApp wraps the compact model. It renders in place without the
// alternate screen.
func NewInlineApp(model InlineModel, sink *FrameSink) *App {
	return &App{model: model, sink: sink}
}

// Run starts the interface and blocks until the user quits, the inline
// countdown completes or ctx is cancelled. It returns the final model.
func (a *App) Run(ctx context.Context) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.fullview {
		opts = append(opts, tea.WithAltScreen())
	}

	a.mu.Lock()
	a.program = tea.NewProgram(a.model, opts...)
	program := a.program
	a.mu.Unlock()

	final, err := program.Run()
	if a.sink != nil {
		a.sink.Close()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return final, nil
		}
		return final, fmt.Errorf("failed to run TUI: %w", err)
	}
	return final, nil
}

// Refresh asks the running program to re-read translations and state.
// It is safe to call from any goroutine.
func (a *App) Refresh() {
	a.mu.RLock()
	program := a.program
	a.mu.RUnlock()

	if program != nil {
		program.Send(refreshMsg{})
	}
}

// Stop gracefully stops the interface.
func (a *App) Stop() {
	a.mu.RLock()
	program := a.program
	a.mu.RUnlock()

	if program != nil {
		program.Quit()
	}
}
