package domain

import (
	"time"
)

// Phase is the countdown's position in its state machine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
)

// Session is the mutable run state of one countdown.
// Remaining stays within [0, Total]; StartedAt is set only while running.
type Session struct {
	ID               string
	Total            time.Duration
	Remaining        time.Duration
	AccumulatedPause time.Duration
	StartedAt        *time.Time
	Phase            Phase
}

// NewSession creates an idle session armed with the given total.
func NewSession(total time.Duration) *Session {
	if total < 0 {
		total = 0
	}
	return &Session{
		ID:        newSessionID(),
		Total:     total,
		Remaining: total,
		Phase:     PhaseIdle,
	}
}

// IsRunning returns true while the countdown is ticking.
func (s *Session) IsRunning() bool {
	return s.Phase == PhaseRunning
}

// Start begins or resumes the countdown at now.
// AccumulatedPause is kept so a resumed countdown continues where it stopped.
func (s *Session) Start(now time.Time) {
	if s.Phase == PhaseRunning {
		return
	}
	s.StartedAt = &now
	s.Phase = PhaseRunning
}

// Stop pauses a running countdown. The time consumed so far becomes the
// new baseline that the next recomputation subtracts; callers Advance to
// the current time first.
func (s *Session) Stop() {
	if s.Phase != PhaseRunning {
		return
	}
	s.AccumulatedPause = s.Total - s.Remaining
	s.StartedAt = nil
	s.Phase = PhasePaused
}

// Advance recomputes Remaining from the wall clock. It returns true when
// the countdown reached zero; the session is then idle and rearmed with
// its original total.
func (s *Session) Advance(now time.Time) bool {
	if s.Phase != PhaseRunning || s.StartedAt == nil {
		return false
	}

	elapsed := now.Sub(*s.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := s.Total - elapsed - s.AccumulatedPause
	if remaining > 0 {
		if remaining > s.Total {
			remaining = s.Total
		}
		s.Remaining = remaining
		return false
	}

	s.rearm()
	return true
}

// rearm returns a finished session to idle with its full duration.
func (s *Session) rearm() {
	s.Remaining = s.Total
	s.AccumulatedPause = 0
	s.StartedAt = nil
	s.Phase = PhaseIdle
}

// Progress returns the consumed fraction of the total (0.0 to 1.0).
func (s *Session) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Total-s.Remaining) / float64(s.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
