package tui

// Key-flow tests for Model (fullscreen) and InlineModel (inline). Each
// test drives a complete interaction through Update.

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/services"
	"github.com/CrueChan/Timer/internal/testutil"
	"github.com/CrueChan/Timer/internal/theme"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type fakeEngine struct {
	frame  domain.Frame
	inputs domain.DurationFields
	calls  []string
}

func (e *fakeEngine) record(name string) error {
	e.calls = append(e.calls, name)
	return nil
}

func (e *fakeEngine) Toggle() error { return e.record("toggle") }
func (e *fakeEngine) Reset() error  { return e.record("reset") }
func (e *fakeEngine) Set() error    { return e.record("set") }
func (e *fakeEngine) Refresh()      { _ = e.record("refresh") }

func (e *fakeEngine) SetInputs(f domain.DurationFields) error {
	e.calls = append(e.calls, "inputs")
	e.inputs = f
	return nil
}

func (e *fakeEngine) Inputs() domain.DurationFields { return e.inputs }
func (e *fakeEngine) Snapshot() domain.Frame         { return e.frame }

func (e *fakeEngine) called(name string) bool {
	for _, c := range e.calls {
		if c == name {
			return true
		}
	}
	return false
}

type fakeLocalizer struct{}

func (fakeLocalizer) T(key string) string { return key }
func (fakeLocalizer) Toggle(context.Context) (domain.Language, error) {
	return domain.LanguageChinese, nil
}

type fakeAppearance struct {
	modes   int
	schemes int
}

func (a *fakeAppearance) ToggleMode(context.Context) (domain.ThemeMode, error) {
	a.modes++
	return domain.ThemeModeDark, nil
}

func (a *fakeAppearance) NextScheme(context.Context) (domain.ColorScheme, error) {
	a.schemes++
	return domain.ColorSchemePurple, nil
}

func newFakeModel(controls domain.Controls) (Model, *fakeEngine, *fakeAppearance) {
	engine := &fakeEngine{frame: domain.Frame{Controls: controls}}
	appearance := &fakeAppearance{}
	m := NewModel(context.Background(), engine, fakeLocalizer{}, appearance, nil, nil, Options{
		PrimaryKey: " ",
		ResetKey:   "r",
		Pulse:      2800 * time.Millisecond,
	})
	return m, engine, appearance
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		result, _ := m.Update(keyMsg(k))
		m = result.(Model)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

type realFixture struct {
	scheduler *testutil.ManualScheduler
	engine    *services.CountdownService
	loc       *i18n.Localizer
	theme     *theme.Theme
	store     *testutil.MemoryStore
}

func newRealModel(t *testing.T, fields domain.DurationFields) (Model, *realFixture) {
	t.Helper()
	ctx := context.Background()
	clock := testutil.NewFakeClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	store := testutil.NewMemoryStore(nil)
	f := &realFixture{
		scheduler: testutil.NewManualScheduler(clock),
		store:     store,
		loc:       i18n.NewLocalizer(ctx, store, "en_US", zap.NewNop()),
		theme:     theme.New(ctx, store, testutil.NewStaticDetector(false), zap.NewNop()),
	}
	f.engine = services.NewCountdownService(clock, f.scheduler, &testutil.RecordingDisplay{}, &testutil.CountingAlerter{},
		services.WithTranslator(f.loc),
		services.WithInputs(fields),
	)
	t.Cleanup(f.engine.Close)

	sheet := NewStylesheet()
	f.theme.Attach(sheet)
	m := NewModel(ctx, f.engine, f.loc, f.theme, sheet, nil, Options{Pulse: 2800 * time.Millisecond})
	m.width = 80
	m.height = 30
	return m, f
}

// ---------------------------------------------------------------------------
// Model: control guards
// ---------------------------------------------------------------------------

func TestModel_SpaceTogglesWhenEnabled(t *testing.T) {
	m, engine, _ := newFakeModel(domain.InitialControls())
	send(m, "space")
	if !engine.called("toggle") {
		t.Error("space should toggle the countdown")
	}
}

func TestModel_SpaceIgnoredWhenStartStopDisabled(t *testing.T) {
	m, engine, _ := newFakeModel(domain.Controls{StartStopDisabled: true})
	send(m, "space")
	if engine.called("toggle") {
		t.Error("space should be ignored while start/stop is disabled")
	}
}

func TestModel_ResetKeyGuardedByControl(t *testing.T) {
	m, engine, _ := newFakeModel(domain.InitialControls())
	send(m, "r")
	if engine.called("reset") {
		t.Error("reset should be ignored while the reset control is disabled")
	}

	m, engine, _ = newFakeModel(domain.Controls{})
	send(m, "r")
	if !engine.called("reset") {
		t.Error("reset should run when the control is enabled")
	}
}

func TestModel_SetKeyGuardedByControl(t *testing.T) {
	m, engine, _ := newFakeModel(domain.Controls{SetDisabled: true})
	send(m, "s")
	if engine.called("set") {
		t.Error("set should be ignored while disabled")
	}

	m, engine, _ = newFakeModel(domain.Controls{})
	send(m, "s")
	if !engine.called("set") {
		t.Error("set should run when enabled")
	}
}

func TestModel_CustomPrimaryKey(t *testing.T) {
	engine := &fakeEngine{}
	m := NewModel(context.Background(), engine, fakeLocalizer{}, &fakeAppearance{}, nil, nil, Options{PrimaryKey: "p"})
	send(m, "space")
	if engine.called("toggle") {
		t.Error("space should not toggle when the primary key is p")
	}
	send(m, "p")
	if !engine.called("toggle") {
		t.Error("p should toggle")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m, _, _ := newFakeModel(domain.InitialControls())
	if _, cmd := m.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestModel_LanguageThemeSchemeKeys(t *testing.T) {
	m, engine, appearance := newFakeModel(domain.InitialControls())
	send(m, "l", "t", "c", "c")

	if !engine.called("refresh") {
		t.Error("language toggle should refresh the engine")
	}
	if appearance.modes != 1 {
		t.Errorf("theme toggles = %d, want 1", appearance.modes)
	}
	if appearance.schemes != 2 {
		t.Errorf("scheme changes = %d, want 2", appearance.schemes)
	}
}

// ---------------------------------------------------------------------------
// Model: input editing
// ---------------------------------------------------------------------------

func TestModel_TabFocusesInputs(t *testing.T) {
	m, _, _ := newFakeModel(domain.InitialControls())

	m = send(m, "tab")
	if m.Focused() != fieldHours {
		t.Fatalf("focus = %d, want hours", m.Focused())
	}
	m = send(m, "tab", "tab")
	if m.Focused() != fieldSeconds {
		t.Fatalf("focus = %d, want seconds", m.Focused())
	}
	m = send(m, "tab")
	if m.Focused() != noFocus {
		t.Errorf("tab past seconds should leave the inputs, focus = %d", m.Focused())
	}
}

func TestModel_TabIgnoredWhileInputsDisabled(t *testing.T) {
	m, _, _ := newFakeModel(domain.Controls{InputsDisabled: true})
	m = send(m, "tab")
	if m.Focused() != noFocus {
		t.Error("inputs should not take focus while disabled")
	}
}

func TestModel_TypingDigitsUpdatesEngineInputs(t *testing.T) {
	m, engine, _ := newFakeModel(domain.InitialControls())

	m = send(m, "tab", "4", "2", "tab", "x", "7", "esc")

	if engine.inputs.Hours != "42" {
		t.Errorf("hours = %q, want 42", engine.inputs.Hours)
	}
	if engine.inputs.Minutes != "7" {
		t.Errorf("minutes = %q, want 7 (non-digits dropped)", engine.inputs.Minutes)
	}
	if m.Focused() != noFocus {
		t.Error("esc should release focus")
	}
}

func TestModel_ShortcutsInertWhileEditing(t *testing.T) {
	m, engine, appearance := newFakeModel(domain.Controls{})

	m = send(m, "tab", "space", "r", "s", "t", "c", "q")

	if engine.called("toggle") || engine.called("reset") || engine.called("set") {
		t.Errorf("shortcuts should not reach the engine while editing, calls = %v", engine.calls)
	}
	if appearance.modes != 0 || appearance.schemes != 0 {
		t.Error("theme shortcuts should be inert while editing")
	}
	if m.Focused() != fieldHours {
		t.Errorf("focus should stay on hours, got %d", m.Focused())
	}
}

func TestModel_BackspaceEditsInput(t *testing.T) {
	m, engine, _ := newFakeModel(domain.InitialControls())
	send(m, "tab", "1", "2", "backspace")
	if engine.inputs.Hours != "1" {
		t.Errorf("hours = %q, want 1", engine.inputs.Hours)
	}
}

// ---------------------------------------------------------------------------
// Model: frames and alerts
// ---------------------------------------------------------------------------

func TestModel_AlertFrameStartsPulse(t *testing.T) {
	m, _, _ := newFakeModel(domain.InitialControls())

	result, cmd := m.Update(frameMsg(domain.Frame{Controls: domain.Controls{Alerting: true}}))
	m = result.(Model)
	if cmd == nil {
		t.Fatal("alert frame should schedule a pulse")
	}
	if !m.pulsing() {
		t.Error("model should pulse right after the alert")
	}

	// A second alerting frame does not restart the pulse.
	_, cmd = m.Update(frameMsg(domain.Frame{Controls: domain.Controls{Alerting: true}}))
	if cmd != nil {
		t.Error("repeated alert frame should not schedule another pulse")
	}
}

func TestModel_FrameDisablingInputsDropsFocus(t *testing.T) {
	m, _, _ := newFakeModel(domain.InitialControls())
	m = send(m, "tab")

	result, _ := m.Update(frameMsg(domain.Frame{Controls: domain.Controls{InputsDisabled: true}}))
	if result.(Model).Focused() != noFocus {
		t.Error("focus should drop when a frame disables the inputs")
	}
}

func TestModel_CountdownFlow(t *testing.T) {
	m, f := newRealModel(t, domain.DurationFields{Hours: "0", Minutes: "0", Seconds: "2"})

	if !strings.Contains(m.View(), "START") {
		t.Error("initial view should show START")
	}

	m = send(m, "space")
	if m.Frame().Phase != domain.PhaseRunning {
		t.Fatalf("phase = %v, want running", m.Frame().Phase)
	}
	if !strings.Contains(m.View(), "STOP") {
		t.Error("running view should show STOP")
	}

	f.scheduler.Advance(2 * time.Second)
	result, _ := m.Update(frameMsg(f.engine.Snapshot()))
	m = result.(Model)

	frame := m.Frame()
	if !frame.Controls.Alerting || !frame.Controls.StartStopDisabled {
		t.Fatalf("completion should alert and disable start/stop, got %+v", frame.Controls)
	}
	if frame.Clock.String() != "00:00:00" {
		t.Errorf("clock = %s, want 00:00:00", frame.Clock)
	}

	m = send(m, "space")
	if m.Frame().Phase != domain.PhaseIdle {
		t.Error("space should do nothing after completion")
	}

	m = send(m, "s")
	frame = m.Frame()
	if frame.Controls.Alerting {
		t.Error("set should clear the alert")
	}
	if frame.Clock.String() != "00:00:02" {
		t.Errorf("clock after set = %s, want 00:00:02", frame.Clock)
	}
}

func TestModel_LanguageToggleTranslatesView(t *testing.T) {
	m, f := newRealModel(t, domain.DurationFields{Seconds: "5"})

	m = send(m, "l")
	if f.loc.Language() != domain.LanguageChinese {
		t.Fatalf("language = %s, want zh", f.loc.Language())
	}
	if stored, _ := f.store.Value(domain.PrefLanguage); stored != "zh" {
		t.Errorf("stored language = %q, want zh", stored)
	}
	if !strings.Contains(m.View(), "开始") {
		t.Error("view should show the Chinese start label")
	}
}

func TestModel_ThemeKeyUpdatesStylesheet(t *testing.T) {
	m, f := newRealModel(t, domain.DurationFields{Seconds: "5"})

	m = send(m, "t")
	if f.theme.Mode() != domain.ThemeModeDark {
		t.Fatalf("mode = %s, want dark", f.theme.Mode())
	}
	want := theme.PaletteFor(domain.DefaultColorScheme, domain.ThemeModeDark).Background
	if got := m.sheet.Variable(theme.VarBackground); got != want {
		t.Errorf("background = %q, want %q", got, want)
	}

	send(m, "c")
	if f.theme.Scheme() != domain.ColorSchemePurple {
		t.Errorf("scheme = %s, want purple", f.theme.Scheme())
	}
}

func TestModel_RefreshMsgRelabelsHelp(t *testing.T) {
	m, f := newRealModel(t, domain.DurationFields{Seconds: "5"})
	if err := f.loc.SetLanguage(context.Background(), domain.LanguageChinese); err != nil {
		t.Fatal(err)
	}

	result, _ := m.Update(refreshMsg{})
	m = result.(Model)
	if m.keys.Reset.Help().Desc != "重置" {
		t.Errorf("reset help = %q, want 重置", m.keys.Reset.Help().Desc)
	}
}

// ---------------------------------------------------------------------------
// InlineModel
// ---------------------------------------------------------------------------

func TestInlineModel_QuitsOnCompletion(t *testing.T) {
	engine := &fakeEngine{}
	m := NewInlineModel(engine, fakeLocalizer{}, nil, nil, Options{})

	result, cmd := m.Update(frameMsg(domain.Frame{Controls: domain.Controls{Alerting: true}}))
	updated := result.(InlineModel)
	if !updated.Completed() {
		t.Error("inline model should complete on the alert frame")
	}
	if !isQuit(cmd) {
		t.Error("inline model should quit on completion")
	}
	if !strings.Contains(updated.View(), i18n.KeyAlertTitle) {
		t.Error("final view should show the alert title")
	}
}

func TestInlineModel_Keys(t *testing.T) {
	engine := &fakeEngine{frame: domain.Frame{Controls: domain.InitialControls()}}
	m := NewInlineModel(engine, fakeLocalizer{}, nil, nil, Options{})

	result, _ := m.Update(keyMsg("space"))
	m = result.(InlineModel)
	if !engine.called("toggle") {
		t.Error("space should toggle")
	}

	m.Update(keyMsg("r"))
	if engine.called("reset") {
		t.Error("reset should be ignored while disabled")
	}

	if _, cmd := m.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should quit")
	}
}
