package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/ports"
)

// frameMsg carries a countdown frame into the bubbletea loop.
type frameMsg domain.Frame

// FrameSink is the ports.Display used by the bubbletea models. It holds
// at most one undelivered frame; a newer frame replaces it, so Render
// never blocks the countdown engine.
type FrameSink struct {
	frames chan domain.Frame
	done   chan struct{}
}

// Ensure FrameSink implements ports.Display.
var _ ports.Display = (*FrameSink)(nil)

// NewFrameSink creates an empty sink.
func NewFrameSink() *FrameSink {
	return &FrameSink{
		frames: make(chan domain.Frame, 1),
		done:   make(chan struct{}),
	}
}

// Render queues frame, dropping an unread older frame.
func (s *FrameSink) Render(frame domain.Frame) {
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}

// Listen returns a command that waits for the next frame.
func (s *FrameSink) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-s.frames:
			return frameMsg(f)
		case <-s.done:
			return nil
		}
	}
}

// Close releases any pending Listen command.
func (s *FrameSink) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
