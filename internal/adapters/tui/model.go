// Package tui provides the terminal user interface for the countdown
// using the Bubbletea framework.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
)

// Engine is the countdown surface the model drives.
type Engine interface {
	Toggle() error
	Reset() error
	Set() error
	SetInputs(fields domain.DurationFields) error
	Inputs() domain.DurationFields
	Snapshot() domain.Frame
	Refresh()
}

// Localizer resolves display strings and switches language.
type Localizer interface {
	T(key string) string
	Toggle(ctx context.Context) (domain.Language, error)
}

// Appearance switches theme mode and color scheme.
type Appearance interface {
	ToggleMode(ctx context.Context) (domain.ThemeMode, error)
	NextScheme(ctx context.Context) (domain.ColorScheme, error)
}

// Options tunes the model.
type Options struct {
	PrimaryKey string
	ResetKey   string
	// Pulse is how long the clock pulses after completion.
	Pulse time.Duration
	// Now is the wall clock used for the pulse animation.
	Now func() time.Time
}

// refreshMsg asks the model to re-read translations and the engine.
type refreshMsg struct{}

const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

// noFocus marks that no input has keyboard focus.
const noFocus = -1

// Model is the fullscreen countdown view.
type Model struct {
	ctx        context.Context
	engine     Engine
	loc        Localizer
	appearance Appearance
	sheet      *Stylesheet
	sink       *FrameSink

	keys     keyMap
	help     help.Model
	progress progress.Model
	inputs   [fieldCount]textinput.Model
	focus    int

	frame      domain.Frame
	width      int
	height     int
	pulse      time.Duration
	alertStart time.Time
	now        func() time.Time
	lastErr    error
}

// NewModel creates a model bound to a running engine.
func NewModel(ctx context.Context, engine Engine, loc Localizer, appearance Appearance, sheet *Stylesheet, sink *FrameSink, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if sheet == nil {
		sheet = NewStylesheet()
	}

	m := Model{
		ctx:        ctx,
		engine:     engine,
		loc:        loc,
		appearance: appearance,
		sheet:      sheet,
		sink:       sink,
		keys:       newKeyMap(opts.PrimaryKey, opts.ResetKey),
		help:       help.New(),
		progress:   progress.New(progress.WithoutPercentage()),
		focus:      noFocus,
		pulse:      opts.Pulse,
		now:        opts.Now,
	}

	fields := engine.Inputs()
	for i, value := range []string{fields.Hours, fields.Minutes, fields.Seconds} {
		in := textinput.New()
		in.CharLimit = 6
		in.Width = 6
		in.Prompt = ""
		in.SetValue(value)
		m.inputs[i] = in
	}

	m.keys.localize(loc.T)
	m.frame = engine.Snapshot()
	return m
}

// Init starts listening for engine frames.
func (m Model) Init() tea.Cmd {
	if m.sink == nil {
		return nil
	}
	return m.sink.Listen()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		cmd := m.applyFrame(domain.Frame(msg))
		if m.sink != nil {
			cmd = tea.Batch(cmd, m.sink.Listen())
		}
		return m, cmd

	case pulseMsg:
		if m.pulsing() {
			return m, pulseTick()
		}
		return m, nil

	case refreshMsg:
		m.keys.localize(m.loc.T)
		return m, m.applyFrame(m.engine.Snapshot())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyFrame records f and starts the pulse when an alert begins.
func (m *Model) applyFrame(f domain.Frame) tea.Cmd {
	started := f.Controls.Alerting && !m.frame.Controls.Alerting
	m.frame = f
	if f.Controls.InputsDisabled {
		m.blur()
	}
	if m.focus == noFocus {
		m.syncInputs()
	}
	if started {
		m.alertStart = m.now()
		if m.pulse > 0 {
			return pulseTick()
		}
	}
	return nil
}

func (m Model) pulsing() bool {
	return m.frame.Controls.Alerting && m.now().Sub(m.alertStart) < m.pulse
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.focus != noFocus {
		return m.handleInputKey(msg)
	}

	controls := m.frame.Controls
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if controls.StartStopDisabled {
			return m, nil
		}
		m.lastErr = m.engine.Toggle()
	case key.Matches(msg, m.keys.Reset):
		if controls.ResetDisabled {
			return m, nil
		}
		m.lastErr = m.engine.Reset()
	case key.Matches(msg, m.keys.Set):
		if controls.SetDisabled {
			return m, nil
		}
		m.lastErr = m.engine.Set()
	case key.Matches(msg, m.keys.Focus):
		if controls.InputsDisabled {
			return m, nil
		}
		return m, m.focusInput(fieldHours)
	case key.Matches(msg, m.keys.Language):
		_, m.lastErr = m.loc.Toggle(m.ctx)
		m.keys.localize(m.loc.T)
		m.engine.Refresh()
	case key.Matches(msg, m.keys.Theme):
		_, m.lastErr = m.appearance.ToggleMode(m.ctx)
	case key.Matches(msg, m.keys.Scheme):
		_, m.lastErr = m.appearance.NextScheme(m.ctx)
	default:
		return m, nil
	}
	return m, m.applyFrame(m.engine.Snapshot())
}

// handleInputKey edits the focused duration field. Only digits and
// cursor movement reach the input; shortcuts are inert while editing.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.blur()
		return m, nil
	case tea.KeyTab:
		if m.focus == fieldSeconds {
			m.blur()
			return m, nil
		}
		return m, m.focusInput(m.focus + 1)
	case tea.KeyShiftTab:
		if m.focus == fieldHours {
			m.blur()
			return m, nil
		}
		return m, m.focusInput(m.focus - 1)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return m, nil
			}
		}
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
	default:
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.lastErr = m.engine.SetInputs(m.fields())
	return m, cmd
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = noFocus
}

func (m Model) fields() domain.DurationFields {
	return domain.DurationFields{
		Hours:   m.inputs[fieldHours].Value(),
		Minutes: m.inputs[fieldMinutes].Value(),
		Seconds: m.inputs[fieldSeconds].Value(),
	}
}

// syncInputs copies the engine's field text back into the inputs.
func (m *Model) syncInputs() {
	f := m.engine.Inputs()
	m.inputs[fieldHours].SetValue(f.Hours)
	m.inputs[fieldMinutes].SetValue(f.Minutes)
	m.inputs[fieldSeconds].SetValue(f.Seconds)
}

// Frame returns the last frame the model has seen.
func (m Model) Frame() domain.Frame {
	return m.frame
}

// Focused returns the index of the focused input or -1.
func (m Model) Focused() int {
	return m.focus
}

func (m Model) t(key string) string {
	return m.loc.T(key)
}

var unitKeys = [fieldCount]string{i18n.KeyHoursUnit, i18n.KeyMinutesUnit, i18n.KeySecondsUnit}

var labelKeys = [fieldCount]string{i18n.KeyHoursLabel, i18n.KeyMinutesLabel, i18n.KeySecondsLabel}
