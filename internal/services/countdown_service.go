package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/ports"
)

const (
	// DefaultRefreshInterval is the minimum wall-clock gap between two
	// recomputations of the remaining time.
	DefaultRefreshInterval = 50 * time.Millisecond

	// DefaultAlertTimeout bounds a single completion alert.
	DefaultAlertTimeout = 10 * time.Second
)

// CountdownService is the countdown engine. It owns the session, the
// control bookkeeping and the recomputation chain.
//
// All transitions and recomputations are serialized by one mutex. Each
// scheduled recomputation carries the generation it was scheduled in;
// every transition out of running bumps the generation before touching
// the session, so a callback that fires late sees a stale generation and
// does nothing.
type CountdownService struct {
	clock     ports.Clock
	scheduler ports.Scheduler
	display   ports.Display
	alerter   ports.Alerter

	translator   ports.Translator
	logger       *zap.Logger
	interval     time.Duration
	alertTimeout time.Duration

	mu         sync.Mutex
	inputs     domain.DurationFields
	session    *domain.Session
	controls   domain.Controls
	shown      domain.Clock
	cancel     func()
	generation uint64
	lastUpdate time.Time
	closed     bool

	alerts sync.WaitGroup
}

// Ensure CountdownService implements ports.TimerController.
var _ ports.TimerController = (*CountdownService)(nil)

// CountdownOption configures a CountdownService.
type CountdownOption func(*CountdownService)

// WithLogger sets the logger used for transitions and alert failures.
func WithLogger(logger *zap.Logger) CountdownOption {
	return func(s *CountdownService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTranslator sets the translator for the start/stop label.
func WithTranslator(t ports.Translator) CountdownOption {
	return func(s *CountdownService) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithRefreshInterval overrides the recomputation throttle.
func WithRefreshInterval(d time.Duration) CountdownOption {
	return func(s *CountdownService) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithAlertTimeout bounds how long a completion alert may run.
func WithAlertTimeout(d time.Duration) CountdownOption {
	return func(s *CountdownService) {
		if d > 0 {
			s.alertTimeout = d
		}
	}
}

// WithInputs seeds the duration inputs the first session is built from.
func WithInputs(fields domain.DurationFields) CountdownOption {
	return func(s *CountdownService) {
		s.inputs = fields
	}
}

type defaultTranslator struct{}

func (defaultTranslator) T(key string) string {
	return i18n.Translate(domain.DefaultLanguage, key)
}

// NewCountdownService creates an idle engine armed from the initial inputs.
// The alerter may be nil.
func NewCountdownService(clock ports.Clock, scheduler ports.Scheduler, display ports.Display, alerter ports.Alerter, opts ...CountdownOption) *CountdownService {
	s := &CountdownService{
		clock:        clock,
		scheduler:    scheduler,
		display:      display,
		alerter:      alerter,
		translator:   defaultTranslator{},
		logger:       zap.NewNop(),
		interval:     DefaultRefreshInterval,
		alertTimeout: DefaultAlertTimeout,
		controls:     domain.InitialControls(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.session = domain.NewSession(s.inputs.Duration())
	s.shown = domain.ClockFromRemaining(s.session.Remaining)
	return s
}

// Toggle starts a stopped countdown or stops a running one.
func (s *CountdownService) Toggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controls.StartStopDisabled {
		return domain.ErrControlDisabled
	}
	if s.session.IsRunning() {
		s.stopLocked()
		return nil
	}
	s.startLocked()
	return nil
}

// Start begins or resumes the countdown.
func (s *CountdownService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controls.StartStopDisabled {
		return domain.ErrControlDisabled
	}
	if s.session.IsRunning() {
		return domain.ErrAlreadyRunning
	}
	s.startLocked()
	return nil
}

// Stop pauses a running countdown.
func (s *CountdownService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsRunning() {
		return domain.ErrNotRunning
	}
	s.stopLocked()
	return nil
}

// Reset rebuilds the session from the inputs and disables reset until
// another action re-enables it.
func (s *CountdownService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rearmLocked()
	s.controls.ResetDisabled = true
	s.controls.SetDisabled = false
	s.controls.InputsDisabled = false

	s.logger.Info("countdown reset",
		zap.String("session", s.session.ID),
		zap.Duration("total", s.session.Total))
	s.renderLocked()
	return nil
}

// Set rebuilds the session from the inputs. Unlike Reset it leaves the
// reset control as it was.
func (s *CountdownService) Set() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rearmLocked()
	s.controls.SetDisabled = false
	s.controls.InputsDisabled = false

	s.logger.Info("countdown set",
		zap.String("session", s.session.ID),
		zap.Duration("total", s.session.Total))
	s.renderLocked()
	return nil
}

// SetInputs replaces the duration input text. It takes effect on the
// next Reset or Set.
func (s *CountdownService) SetInputs(fields domain.DurationFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.IsRunning() || s.controls.InputsDisabled {
		return domain.ErrInputsLocked
	}
	s.inputs = fields
	return nil
}

// Inputs returns the current duration input text.
func (s *CountdownService) Inputs() domain.DurationFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

// Snapshot returns the frame the display currently shows.
func (s *CountdownService) Snapshot() domain.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// Refresh re-renders the current frame, for example after a language
// change.
func (s *CountdownService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked()
}

// Close cancels any pending recomputation and waits for in-flight alerts.
func (s *CountdownService) Close() {
	s.mu.Lock()
	s.cancelLocked()
	if s.session.IsRunning() {
		s.session.Stop()
	}
	s.closed = true
	s.mu.Unlock()

	s.alerts.Wait()
}

func (s *CountdownService) startLocked() {
	now := s.clock.Now()
	s.session.Start(now)
	s.lastUpdate = now

	s.controls.StartStopLabel = domain.LabelStop
	s.controls.ResetDisabled = false
	s.controls.SetDisabled = true
	s.controls.InputsDisabled = true
	s.controls.Alerting = false

	s.logger.Info("countdown started",
		zap.String("session", s.session.ID),
		zap.Duration("remaining", s.session.Remaining))
	s.renderLocked()
	s.scheduleLocked(s.interval)
}

// stopLocked charges the time since the last recomputation before
// pausing. A stop that lands past zero completes instead.
func (s *CountdownService) stopLocked() {
	s.cancelLocked()
	now := s.clock.Now()
	s.lastUpdate = now
	if s.session.Advance(now) {
		s.completeLocked()
		return
	}
	s.session.Stop()
	s.shown = domain.ClockFromRemaining(s.session.Remaining)

	s.controls.StartStopLabel = domain.LabelStart
	s.controls.ResetDisabled = false
	s.controls.SetDisabled = false
	s.controls.InputsDisabled = false

	s.logger.Info("countdown stopped",
		zap.String("session", s.session.ID),
		zap.Duration("remaining", s.session.Remaining))
	s.renderLocked()
}

// rearmLocked replaces the session with a fresh idle one built from the
// current inputs and re-enables start/stop.
func (s *CountdownService) rearmLocked() {
	s.cancelLocked()
	s.session = domain.NewSession(s.inputs.Duration())
	s.shown = domain.ClockFromRemaining(s.session.Remaining)

	s.controls.StartStopLabel = domain.LabelStart
	s.controls.StartStopDisabled = false
	s.controls.Alerting = false
}

func (s *CountdownService) cancelLocked() {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *CountdownService) scheduleLocked(d time.Duration) {
	if s.closed {
		return
	}
	gen := s.generation
	s.cancel = s.scheduler.Schedule(d, func() { s.recompute(gen) })
}

// recompute is the scheduled callback.
func (s *CountdownService) recompute(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.session.IsRunning() {
		return
	}
	s.cancel = nil

	now := s.clock.Now()
	if since := now.Sub(s.lastUpdate); since < s.interval {
		s.scheduleLocked(s.interval - since)
		return
	}
	s.lastUpdate = now

	if !s.session.Advance(now) {
		s.shown = domain.ClockFromRemaining(s.session.Remaining)
		s.renderLocked()
		s.scheduleLocked(s.interval)
		return
	}

	s.completeLocked()
}

// completeLocked runs after the session has rearmed itself.
func (s *CountdownService) completeLocked() {
	s.generation++
	s.shown = domain.Clock{}

	s.controls.StartStopLabel = domain.LabelStart
	s.controls.StartStopDisabled = true
	s.controls.ResetDisabled = false
	s.controls.SetDisabled = false
	s.controls.InputsDisabled = false
	s.controls.Alerting = true

	s.logger.Info("countdown completed",
		zap.String("session", s.session.ID),
		zap.Duration("total", s.session.Total))
	s.renderLocked()

	if s.alerter == nil {
		return
	}
	s.alerts.Add(1)
	go s.alert(s.session.ID)
}

func (s *CountdownService) alert(sessionID string) {
	defer s.alerts.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.alertTimeout)
	defer cancel()

	if err := s.alerter.Alert(ctx); err != nil {
		s.logger.Warn("completion alert failed",
			zap.String("session", sessionID),
			zap.Error(err))
	}
}

func (s *CountdownService) renderLocked() {
	if s.display == nil {
		return
	}
	s.display.Render(s.frameLocked())
}

func (s *CountdownService) frameLocked() domain.Frame {
	progress := s.session.Progress()
	if s.controls.Alerting {
		progress = 1
	}
	return domain.Frame{
		SessionID:     s.session.ID,
		Phase:         s.session.Phase,
		Clock:         s.shown,
		Remaining:     s.session.Remaining,
		Total:         s.session.Total,
		Progress:      progress,
		Controls:      s.controls,
		StartStopText: s.translator.T(s.controls.StartStopLabel),
	}
}
