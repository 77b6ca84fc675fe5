// Package appearance reports whether the host prefers a dark theme.
package appearance

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrueChan/Timer/internal/config"
	"github.com/CrueChan/Timer/internal/ports"
)

// Detector implements ports.AppearanceDetector. An explicit light or dark
// setting wins; in auto mode COLORFGBG is consulted, then the terminal's
// reported background.
type Detector struct {
	mu      sync.RWMutex
	setting string

	getenv   func(string) string
	terminal func() bool
}

// Ensure Detector implements ports.AppearanceDetector.
var _ ports.AppearanceDetector = (*Detector)(nil)

// NewDetector creates a detector for the given theme.system_appearance.
func NewDetector(setting string) *Detector {
	return &Detector{
		setting:  normalize(setting),
		getenv:   os.Getenv,
		terminal: lipgloss.HasDarkBackground,
	}
}

func normalize(setting string) string {
	switch s := strings.ToLower(strings.TrimSpace(setting)); s {
	case config.AppearanceLight, config.AppearanceDark:
		return s
	default:
		return config.AppearanceAuto
	}
}

// SetSetting updates the configured appearance, e.g. after the config
// file changed.
func (d *Detector) SetSetting(setting string) {
	d.mu.Lock()
	d.setting = normalize(setting)
	d.mu.Unlock()
}

// Setting returns the configured appearance.
func (d *Detector) Setting() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.setting
}

// PrefersDark reports the host's dark preference.
func (d *Detector) PrefersDark() bool {
	switch d.Setting() {
	case config.AppearanceDark:
		return true
	case config.AppearanceLight:
		return false
	}

	if dark, ok := parseColorFGBG(d.getenv("COLORFGBG")); ok {
		return dark
	}
	return d.terminal()
}

// parseColorFGBG reads the background index from a "fg;bg" or
// "fg;other;bg" value. ANSI indexes 0-6 and 8 are dark backgrounds.
func parseColorFGBG(value string) (dark bool, ok bool) {
	if value == "" {
		return false, false
	}
	parts := strings.Split(value, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}
