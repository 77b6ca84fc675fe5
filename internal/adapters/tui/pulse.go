package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// pulseFrame is the redraw cadence while the alert pulses.
	pulseFrame = 80 * time.Millisecond
	// pulseBeat is one full bright-dim-bright cycle.
	pulseBeat = 700 * time.Millisecond
)

type pulseMsg time.Time

func pulseTick() tea.Cmd {
	return tea.Tick(pulseFrame, func(t time.Time) tea.Msg {
		return pulseMsg(t)
	})
}

// pulseColor is the clock color elapsed into an alert. Inside window it
// oscillates between alert and base in Lab space; afterwards it holds
// the alert color.
func pulseColor(base, alert string, elapsed, window time.Duration) string {
	if elapsed < 0 || elapsed >= window {
		return alert
	}
	a, err := colorful.Hex(alert)
	if err != nil {
		return alert
	}
	b, err := colorful.Hex(base)
	if err != nil {
		return alert
	}

	phase := float64(elapsed%pulseBeat) / float64(pulseBeat)
	weight := 0.5 + 0.5*math.Cos(2*math.Pi*phase)
	return b.BlendLab(a, weight).Clamped().Hex()
}
