// Package theme resolves the active color scheme and light/dark mode and
// writes the resulting palette to a style target.
package theme

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/ports"
)

// Theme is the appearance state for one application instance.
type Theme struct {
	mu       sync.RWMutex
	mode     domain.ThemeMode
	scheme   domain.ColorScheme
	override bool

	store   ports.PreferenceStore
	targets []ports.StyleTarget
	logger  *zap.Logger
}

// New resolves the initial mode (stored, then the detector, then light)
// and scheme (stored, then the default). Read errors are logged and
// treated as "nothing stored".
func New(ctx context.Context, store ports.PreferenceStore, detector ports.AppearanceDetector, logger *zap.Logger) *Theme {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Theme{
		mode:   domain.ThemeModeLight,
		scheme: domain.DefaultColorScheme,
		store:  store,
		logger: logger,
	}

	if mode := domain.ThemeMode(t.read(ctx, domain.PrefThemeMode)); mode.Valid() {
		t.mode = mode
		t.override = true
	} else if detector != nil && detector.PrefersDark() {
		t.mode = domain.ThemeModeDark
	}

	if scheme := domain.ColorScheme(t.read(ctx, domain.PrefColorScheme)); scheme.Valid() {
		t.scheme = scheme
	}

	return t
}

func (t *Theme) read(ctx context.Context, key string) string {
	if t.store == nil {
		return ""
	}
	value, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.Warn("failed to read theme preference", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

// Attach registers target and applies the current palette to it.
func (t *Theme) Attach(target ports.StyleTarget) {
	t.mu.Lock()
	t.targets = append(t.targets, target)
	mode, scheme := t.mode, t.scheme
	t.mu.Unlock()

	apply(target, scheme, mode)
}

// Apply writes the current palette to target.
func (t *Theme) Apply(target ports.StyleTarget) {
	apply(target, t.Scheme(), t.Mode())
}

func apply(target ports.StyleTarget, scheme domain.ColorScheme, mode domain.ThemeMode) {
	for name, value := range PaletteFor(scheme, mode).Variables() {
		target.SetVariable(name, value)
	}
	target.SetAttribute(AttrTheme, string(mode))
	target.SetAttribute(AttrColorScheme, string(scheme))
}

func (t *Theme) applyAll() {
	t.mu.RLock()
	targets := append([]ports.StyleTarget(nil), t.targets...)
	mode, scheme := t.mode, t.scheme
	t.mu.RUnlock()

	for _, target := range targets {
		apply(target, scheme, mode)
	}
}

// Mode returns the active theme mode.
func (t *Theme) Mode() domain.ThemeMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// Scheme returns the active color scheme.
func (t *Theme) Scheme() domain.ColorScheme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scheme
}

// Overridden reports whether the mode was chosen explicitly rather than
// following the system appearance.
func (t *Theme) Overridden() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.override
}

// Palette returns the active palette.
func (t *Theme) Palette() Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return PaletteFor(t.scheme, t.mode)
}

// SetMode switches and persists the theme mode.
func (t *Theme) SetMode(ctx context.Context, mode domain.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedThemeMode, mode)
	}
	if t.store != nil {
		if err := t.store.Set(ctx, domain.PrefThemeMode, string(mode)); err != nil {
			return fmt.Errorf("failed to save theme mode: %w", err)
		}
	}

	t.mu.Lock()
	t.mode = mode
	t.override = true
	t.mu.Unlock()

	t.logger.Info("theme mode changed", zap.String("mode", string(mode)))
	t.applyAll()
	return nil
}

// ToggleMode switches between light and dark.
func (t *Theme) ToggleMode(ctx context.Context) (domain.ThemeMode, error) {
	next := t.Mode().Opposite()
	if err := t.SetMode(ctx, next); err != nil {
		return t.Mode(), err
	}
	return next, nil
}

// SetScheme switches and persists the color scheme.
func (t *Theme) SetScheme(ctx context.Context, scheme domain.ColorScheme) error {
	if !scheme.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedColorScheme, scheme)
	}
	if t.store != nil {
		if err := t.store.Set(ctx, domain.PrefColorScheme, string(scheme)); err != nil {
			return fmt.Errorf("failed to save color scheme: %w", err)
		}
	}

	t.mu.Lock()
	t.scheme = scheme
	t.mu.Unlock()

	t.logger.Info("color scheme changed", zap.String("scheme", string(scheme)))
	t.applyAll()
	return nil
}

// NextScheme cycles to the following color scheme.
func (t *Theme) NextScheme(ctx context.Context) (domain.ColorScheme, error) {
	next := NextScheme(t.Scheme())
	if err := t.SetScheme(ctx, next); err != nil {
		return t.Scheme(), err
	}
	return next, nil
}

// FollowSystem drops the persisted mode so the theme tracks the system
// appearance again.
func (t *Theme) FollowSystem(ctx context.Context, dark bool) error {
	if t.store != nil {
		if err := t.store.Delete(ctx, domain.PrefThemeMode); err != nil {
			return fmt.Errorf("failed to clear theme mode: %w", err)
		}
	}
	t.mu.Lock()
	t.override = false
	t.mu.Unlock()

	t.SystemChanged(dark)
	return nil
}

// SystemChanged reacts to a host appearance change. It is ignored while
// an explicit mode is persisted. It reports whether the mode changed.
func (t *Theme) SystemChanged(dark bool) bool {
	mode := domain.ThemeModeLight
	if dark {
		mode = domain.ThemeModeDark
	}

	t.mu.Lock()
	if t.override || t.mode == mode {
		t.mu.Unlock()
		return false
	}
	t.mode = mode
	t.mu.Unlock()

	t.logger.Info("following system appearance", zap.String("mode", string(mode)))
	t.applyAll()
	return true
}

// NextScheme returns the scheme after s in cycling order.
func NextScheme(s domain.ColorScheme) domain.ColorScheme {
	for i, c := range domain.SupportedColorSchemes {
		if c == s {
			return domain.SupportedColorSchemes[(i+1)%len(domain.SupportedColorSchemes)]
		}
	}
	return domain.DefaultColorScheme
}
