package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/ports"
	"github.com/CrueChan/Timer/internal/theme"
)

// Stylesheet receives the theme's style variables and turns them into
// lipgloss styles.
type Stylesheet struct {
	mu    sync.RWMutex
	vars  map[string]string
	attrs map[string]string
}

// Ensure Stylesheet implements ports.StyleTarget.
var _ ports.StyleTarget = (*Stylesheet)(nil)

// NewStylesheet creates a stylesheet preloaded with the default palette.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		vars:  theme.PaletteFor(domain.DefaultColorScheme, domain.ThemeModeLight).Variables(),
		attrs: make(map[string]string),
	}
}

func (s *Stylesheet) SetVariable(name, value string) {
	s.mu.Lock()
	s.vars[name] = value
	s.mu.Unlock()
}

func (s *Stylesheet) SetAttribute(name, value string) {
	s.mu.Lock()
	s.attrs[name] = value
	s.mu.Unlock()
}

// Variable returns a style variable.
func (s *Stylesheet) Variable(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars[name]
}

// Attribute returns a descriptive attribute such as data-theme.
func (s *Stylesheet) Attribute(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrs[name]
}

// styles is the resolved set of lipgloss styles for one render.
type styles struct {
	primary     lipgloss.Color
	focus       lipgloss.Color
	alert       lipgloss.Color
	text        lipgloss.Color
	secondary   lipgloss.Color
	border      lipgloss.Color
	title       lipgloss.Style
	muted       lipgloss.Style
	label       lipgloss.Style
	button      lipgloss.Style
	buttonOff   lipgloss.Style
	inputBox    lipgloss.Style
	inputActive lipgloss.Style
	errorText   lipgloss.Style
}

func (s *Stylesheet) styles() styles {
	s.mu.RLock()
	primary := lipgloss.Color(s.vars[theme.VarPrimary])
	focus := lipgloss.Color(s.vars[theme.VarPrimaryFocus])
	bg := lipgloss.Color(s.vars[theme.VarBackground])
	text := lipgloss.Color(s.vars[theme.VarText])
	secondary := lipgloss.Color(s.vars[theme.VarTextSecondary])
	border := lipgloss.Color(s.vars[theme.VarBorder])
	alert := lipgloss.Color(s.vars[theme.VarAlert])
	s.mu.RUnlock()

	return styles{
		primary:   primary,
		focus:     focus,
		alert:     alert,
		text:      text,
		secondary: secondary,
		border:    border,
		title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		muted:     lipgloss.NewStyle().Foreground(secondary),
		label:     lipgloss.NewStyle().Foreground(text),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(bg).
			Background(primary).
			Padding(0, 2),
		buttonOff: lipgloss.NewStyle().
			Foreground(secondary).
			Background(border).
			Padding(0, 2),
		inputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		inputActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focus).
			Padding(0, 1),
		errorText: lipgloss.NewStyle().Foreground(alert),
	}
}
