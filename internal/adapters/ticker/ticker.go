// Package ticker provides the wall-clock and timer-backed implementations
// of the countdown's clock and scheduler ports.
package ticker

import (
	"time"

	"github.com/CrueChan/Timer/internal/ports"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Scheduler runs callbacks on time.AfterFunc goroutines.
type Scheduler struct{}

// Schedule runs fn after d unless the returned cancel func is called first.
func (Scheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

var (
	_ ports.Clock     = SystemClock{}
	_ ports.Scheduler = Scheduler{}
)
