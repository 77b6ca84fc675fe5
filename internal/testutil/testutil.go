// Package testutil provides hand-written fakes for the ports interfaces.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/ports"
)

// FakeClock is a manually advanced ports.Clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock fixed at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *FakeClock) add(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type task struct {
	id        int
	at        time.Time
	fn        func()
	cancelled bool
}

// ManualScheduler is a ports.Scheduler driven by a FakeClock. Callbacks
// only run inside Advance.
type ManualScheduler struct {
	clock *FakeClock

	mu     sync.Mutex
	nextID int
	tasks  []*task
}

// NewManualScheduler returns a scheduler bound to clock.
func NewManualScheduler(clock *FakeClock) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &task{id: s.nextID, at: s.clock.Now().Add(d), fn: fn}
	s.tasks = append(s.tasks, t)

	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// Pending returns the number of scheduled callbacks not yet run or
// cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that
// comes due along the way in time order. The clock is set to each
// callback's due time before it runs.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.clock.Now().Add(d)
	for {
		t := s.popDue(end)
		if t == nil {
			break
		}
		if t.at.After(s.clock.Now()) {
			s.clock.Set(t.at)
		}
		t.fn()
	}
	if end.After(s.clock.Now()) {
		s.clock.Set(end)
	}
}

// Step advances in increments of step until d has elapsed.
func (s *ManualScheduler) Step(d, step time.Duration) {
	for d > 0 {
		inc := step
		if inc > d {
			inc = d
		}
		s.Advance(inc)
		d -= inc
	}
}

// Skew moves the clock without running any callbacks.
func (s *ManualScheduler) Skew(d time.Duration) {
	s.clock.add(d)
}

func (s *ManualScheduler) popDue(end time.Time) *task {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at.Equal(s.tasks[j].at) {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].at.Before(s.tasks[j].at)
	})
	first := s.tasks[0]
	if first.at.After(end) {
		return nil
	}
	s.tasks = s.tasks[1:]
	return first
}

// RecordingDisplay stores every rendered frame.
type RecordingDisplay struct {
	mu     sync.Mutex
	frames []domain.Frame
}

func (d *RecordingDisplay) Render(frame domain.Frame) {
	d.mu.Lock()
	d.frames = append(d.frames, frame)
	d.mu.Unlock()
}

// Frames returns a copy of every frame rendered so far.
func (d *RecordingDisplay) Frames() []domain.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Frame(nil), d.frames...)
}

// Last returns the most recent frame and whether one exists.
func (d *RecordingDisplay) Last() (domain.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return domain.Frame{}, false
	}
	return d.frames[len(d.frames)-1], true
}

// Reset discards recorded frames.
func (d *RecordingDisplay) Reset() {
	d.mu.Lock()
	d.frames = nil
	d.mu.Unlock()
}

// CountingAlerter counts Alert calls and returns Err from each.
type CountingAlerter struct {
	mu    sync.Mutex
	calls int
	Err   error
	// Block, when non-nil, is waited on before returning.
	Block chan struct{}
}

func (a *CountingAlerter) Alert(ctx context.Context) error {
	a.mu.Lock()
	a.calls++
	block := a.Block
	err := a.Err
	a.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Calls returns how many times Alert ran.
func (a *CountingAlerter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// MemoryStore is an in-memory ports.PreferenceStore with error injection.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	GetErr  error
	SetErr  error
	SetCall int
}

// NewMemoryStore returns a store seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &MemoryStore{values: m}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCall++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) All(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

// Value returns the raw stored value for key.
func (s *MemoryStore) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// StyleRecorder is a ports.StyleTarget that keeps the last value written.
type StyleRecorder struct {
	mu         sync.Mutex
	Variables  map[string]string
	Attributes map[string]string
}

// NewStyleRecorder returns an empty recorder.
func NewStyleRecorder() *StyleRecorder {
	return &StyleRecorder{
		Variables:  make(map[string]string),
		Attributes: make(map[string]string),
	}
}

func (r *StyleRecorder) SetVariable(name, value string) {
	r.mu.Lock()
	r.Variables[name] = value
	r.mu.Unlock()
}

func (r *StyleRecorder) SetAttribute(name, value string) {
	r.mu.Lock()
	r.Attributes[name] = value
	r.mu.Unlock()
}

// Variable returns a recorded variable.
func (r *StyleRecorder) Variable(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Variables[name]
}

// Attribute returns a recorded attribute.
func (r *StyleRecorder) Attribute(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Attributes[name]
}

// StaticDetector is a ports.AppearanceDetector with a fixed answer.
type StaticDetector struct {
	mu   sync.Mutex
	dark bool
}

// NewStaticDetector returns a detector reporting dark.
func NewStaticDetector(dark bool) *StaticDetector {
	return &StaticDetector{dark: dark}
}

func (d *StaticDetector) PrefersDark() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dark
}

// SetDark changes the reported appearance.
func (d *StaticDetector) SetDark(dark bool) {
	d.mu.Lock()
	d.dark = dark
	d.mu.Unlock()
}

var (
	_ ports.Clock              = (*FakeClock)(nil)
	_ ports.Scheduler          = (*ManualScheduler)(nil)
	_ ports.Display            = (*RecordingDisplay)(nil)
	_ ports.Alerter            = (*CountingAlerter)(nil)
	_ ports.PreferenceStore    = (*MemoryStore)(nil)
	_ ports.StyleTarget        = (*StyleRecorder)(nil)
	_ ports.AppearanceDetector = (*StaticDetector)(nil)
)
