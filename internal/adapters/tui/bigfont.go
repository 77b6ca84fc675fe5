package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps digits and the colon to three rows of half-block art.
// Digits are three cells wide.
var glyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▄█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ", "▀", "▀"},
}

// bigClockWidth is the rendered width of "HH:MM:SS".
const bigClockWidth = 6*3 + 2*1 + 7

// renderBigClock draws an HH:MM:SS string with the glyph font. Narrow
// terminals get the padded single-line form instead.
func renderBigClock(clock string, padded [3]string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width > 0 && width < bigClockWidth+4 {
		return style.Render(strings.Join(padded[:], ":"))
	}

	var rows [3]strings.Builder
	first := true
	for _, ch := range clock {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteString(" ")
			}
			rows[i].WriteString(glyph[i])
		}
		first = false
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
