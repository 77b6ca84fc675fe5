// Package ports defines the interfaces (driven and driving ports)
// for the Timer application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/CrueChan/Timer/internal/domain"
)

// Clock supplies wall-clock time.
// This is a driven port (implemented by adapters).
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback once after a delay.
// This is a driven port (implemented by adapters).
type Scheduler interface {
	// Schedule arranges for fn to run after d. Calling the returned
	// cancel func before fn starts prevents it from running.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// Display receives countdown frames.
// This is a driven port (implemented by adapters).
type Display interface {
	// Render publishes a frame. Implementations must not block and must
	// not call back into the countdown service.
	Render(frame domain.Frame)
}

// Alerter plays the completion signal (sound, notification).
// This is a driven port (implemented by adapters).
type Alerter interface {
	Alert(ctx context.Context) error
}

// Translator looks up display strings in the active language.
type Translator interface {
	T(key string) string
}

// TimerController is the set of countdown operations exposed to
// external drivers such as the MCP server.
type TimerController interface {
	Toggle() error
	Start() error
	Stop() error
	Reset() error
	Set() error
	SetInputs(fields domain.DurationFields) error
	Snapshot() domain.Frame
}
