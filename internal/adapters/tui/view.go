package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/theme"
)

const (
	defaultWidth = 60
	maxBarWidth  = 48
)

// View renders the model.
func (m Model) View() string {
	st := m.sheet.styles()
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	title := st.title.Render(m.t(i18n.KeyPageTitle))
	phase := st.muted.Render(m.t(i18n.PhaseKey(m.frame.Phase)))
	b.WriteString(title + "  " + phase)
	b.WriteString("\n\n")

	b.WriteString(renderBigClock(m.frame.Clock.String(), m.frame.Clock.Padded(), m.clockColor(), width))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(m.unitsCaption()))
	b.WriteString("\n\n")

	bar := m.progress
	bar.Width = min(width-8, maxBarWidth)
	bar.FullColor = string(st.primary)
	bar.EmptyColor = string(st.border)
	if m.frame.Controls.Alerting {
		bar.FullColor = string(st.alert)
	}
	b.WriteString(bar.ViewAs(m.frame.Progress))
	b.WriteString("\n\n")

	b.WriteString(m.viewInputs(st))
	b.WriteString("\n")
	b.WriteString(m.viewButtons(st))
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(st.errorText.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(m.t(i18n.KeyCopyright) + " · " + m.t(i18n.KeyLanguageToggle)))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// clockColor is the primary color, or the alert color once the
// countdown has completed.
func (m Model) clockColor() lipgloss.Color {
	primary := m.sheet.Variable(theme.VarPrimary)
	if !m.frame.Controls.Alerting {
		return lipgloss.Color(primary)
	}
	alert := m.sheet.Variable(theme.VarAlert)
	return lipgloss.Color(pulseColor(primary, alert, m.now().Sub(m.alertStart), m.pulse))
}

func (m Model) unitsCaption() string {
	parts := make([]string, fieldCount)
	for i, k := range unitKeys {
		parts[i] = lipgloss.PlaceHorizontal(7, lipgloss.Center, m.t(k))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewInputs(st styles) string {
	cols := make([]string, fieldCount)
	for i := range m.inputs {
		box := st.inputBox
		if i == m.focus {
			box = st.inputActive
		}
		value := m.inputs[i].View()
		if m.frame.Controls.InputsDisabled {
			value = st.muted.Render(m.inputs[i].Value())
		}
		label := st.label.Render(m.t(labelKeys[i]))
		cols[i] = lipgloss.JoinVertical(lipgloss.Left, label, box.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols[0], "  ", cols[1], "  ", cols[2])
}

func (m Model) viewButtons(st styles) string {
	c := m.frame.Controls
	render := func(text string, disabled bool) string {
		if disabled {
			return st.buttonOff.Render(text)
		}
		return st.button.Render(text)
	}
	startStop := m.frame.StartStopText
	if startStop == "" {
		startStop = m.t(c.StartStopLabel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render(startStop, c.StartStopDisabled), " ",
		render(m.t(i18n.KeyResetButton), c.ResetDisabled), " ",
		render(m.t(i18n.KeySetButton), c.SetDisabled),
	)
}
