package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/ports"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// InlineModel is a compact countdown rendered below the prompt. It
// exits once the countdown completes.
type InlineModel struct {
	engine Engine
	loc    Localizer
	sheet  *Stylesheet
	sink   *FrameSink
	keys   keyMap
	frame  domain.Frame
	width  int
	done   bool
}

// NewInlineModel creates the compact view for a running engine.
func NewInlineModel(engine Engine, loc Localizer, sheet *Stylesheet, sink *FrameSink, opts Options) InlineModel {
	if sheet == nil {
		sheet = NewStylesheet()
	}
	keys := newKeyMap(opts.PrimaryKey, opts.ResetKey)
	keys.localize(loc.T)
	return InlineModel{
		engine: engine,
		loc:    loc,
		sheet:  sheet,
		sink:   sink,
		keys:   keys,
		frame:  engine.Snapshot(),
		width:  getTerminalWidth(),
	}
}

func (m InlineModel) Init() tea.Cmd {
	if m.sink == nil {
		return nil
	}
	return m.sink.Listen()
}

func (m InlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = domain.Frame(msg)
		if m.frame.Controls.Alerting {
			m.done = true
			return m, tea.Quit
		}
		if m.sink == nil {
			return m, nil
		}
		return m, m.sink.Listen()

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if !m.frame.Controls.StartStopDisabled {
				_ = m.engine.Toggle()
			}
		case key.Matches(msg, m.keys.Reset):
			if !m.frame.Controls.ResetDisabled {
				_ = m.engine.Reset()
			}
		default:
			return m, nil
		}
		m.frame = m.engine.Snapshot()
	}
	return m, nil
}

// Completed reports whether the countdown reached zero.
func (m InlineModel) Completed() bool {
	return m.done
}

func (m InlineModel) View() string {
	st := m.sheet.styles()
	accent := lipgloss.NewStyle().Foreground(st.primary).Bold(true)
	dim := st.muted

	var b strings.Builder
	if m.done {
		alert := lipgloss.NewStyle().Foreground(st.alert).Bold(true)
		b.WriteString(alert.Render(fmt.Sprintf("  %s  %s", m.frame.Clock, m.loc.T(i18n.KeyAlertTitle))))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(accent.Render(fmt.Sprintf("  %s  %s", m.loc.T(i18n.KeyPageTitle), m.frame.Clock)))
	b.WriteString(dim.Render("  " + m.loc.T(i18n.PhaseKey(m.frame.Phase))))
	b.WriteString("\n")

	barWidth := m.width - 16
	if barWidth < 20 {
		barWidth = 20
	}
	bar := progress.New(progress.WithSolidFill(string(st.primary)), progress.WithoutPercentage())
	bar.Width = barWidth
	b.WriteString("  " + bar.ViewAs(m.frame.Progress))
	b.WriteString(dim.Render(fmt.Sprintf("  %d%%", int(m.frame.Progress*100))))
	b.WriteString("\n")

	help := []key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.Quit}
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, "["+h.Help().Key+"] "+h.Help().Desc)
	}
	b.WriteString(dim.Render("  " + strings.Join(parts, "  ")))
	b.WriteString("\n")
	return b.String()
}

// PlainDisplay is a ports.Display for non-interactive output. It writes
// one line per displayed second and closes Done when the countdown
// completes.
type PlainDisplay struct {
	w          io.Writer
	translator ports.Translator
	frames     chan domain.Frame
	done       chan struct{}
	once       sync.Once
}

// Ensure PlainDisplay implements ports.Display.
var _ ports.Display = (*PlainDisplay)(nil)

// NewPlainDisplay writes frames to w. Call Run to start writing.
func NewPlainDisplay(w io.Writer, translator ports.Translator) *PlainDisplay {
	return &PlainDisplay{
		w:          w,
		translator: translator,
		frames:     make(chan domain.Frame, 64),
		done:       make(chan struct{}),
	}
}

// Render queues a frame. Frames beyond the buffer are dropped.
func (p *PlainDisplay) Render(frame domain.Frame) {
	select {
	case p.frames <- frame:
	default:
	}
}

// Done is closed after the completion line is written.
func (p *PlainDisplay) Done() <-chan struct{} {
	return p.done
}

// Run writes queued frames until the countdown completes or stop closes.
func (p *PlainDisplay) Run(stop <-chan struct{}) {
	last := ""
	for {
		select {
		case <-stop:
			return
		case f := <-p.frames:
			line := f.Clock.String()
			if line != last {
				fmt.Fprintln(p.w, line)
				last = line
			}
			if f.Controls.Alerting {
				fmt.Fprintln(p.w, p.translator.T(i18n.KeyAlertTitle))
				p.once.Do(func() { close(p.done) })
				return
			}
		}
	}
}
