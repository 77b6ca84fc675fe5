package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/testutil"
)

func TestPaletteFor_CoversEveryPair(t *testing.T) {
	for _, scheme := range domain.SupportedColorSchemes {
		for _, mode := range domain.SupportedThemeModes {
			p := PaletteFor(scheme, mode)
			for name, value := range p.Variables() {
				assert.NotEmpty(t, value, "%s/%s %s", scheme, mode, name)
			}
		}
	}
}

func TestPaletteFor_Values(t *testing.T) {
	tests := []struct {
		scheme  domain.ColorScheme
		mode    domain.ThemeMode
		primary string
		bg      string
		alert   string
	}{
		{domain.ColorSchemeBlue, domain.ThemeModeLight, "#14306B", "#ffffff", "#ff0000"},
		{domain.ColorSchemeBlue, domain.ThemeModeDark, "#3d6bb8", "#1a1a1a", "#ff6b6b"},
		{domain.ColorSchemePurple, domain.ThemeModeLight, "#7B3FF2", "#ffffff", "#ff0000"},
		{domain.ColorSchemeCyan, domain.ThemeModeDark, "#48c9b0", "#1a1a1a", "#ff6b6b"},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme)+"/"+string(tt.mode), func(t *testing.T) {
			p := PaletteFor(tt.scheme, tt.mode)
			assert.Equal(t, tt.primary, p.Primary)
			assert.Equal(t, tt.bg, p.Background)
			assert.Equal(t, tt.alert, p.Alert)
		})
	}
}

func TestPaletteFor_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, PaletteFor(domain.ColorSchemeBlue, domain.ThemeModeLight), PaletteFor("magenta", "sepia"))
}

func TestSchemeColor(t *testing.T) {
	assert.Equal(t, "#27AE60", SchemeColor(domain.ColorSchemeGreen))
	assert.Equal(t, "#E67E22", SchemeColor(domain.ColorSchemeOrange))
}

func TestNextScheme(t *testing.T) {
	assert.Equal(t, domain.ColorSchemePurple, NextScheme(domain.ColorSchemeBlue))
	assert.Equal(t, domain.ColorSchemeBlue, NextScheme(domain.ColorSchemeCyan))
	assert.Equal(t, domain.DefaultColorScheme, NextScheme("nope"))
}

func TestNew_ResolvesInitialState(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		stored       map[string]string
		prefersDark  bool
		wantMode     domain.ThemeMode
		wantScheme   domain.ColorScheme
		wantOverride bool
	}{
		{"defaults", nil, false, domain.ThemeModeLight, domain.ColorSchemeBlue, false},
		{"system dark", nil, true, domain.ThemeModeDark, domain.ColorSchemeBlue, false},
		{"stored light beats system dark", map[string]string{domain.PrefThemeMode: "light"}, true, domain.ThemeModeLight, domain.ColorSchemeBlue, true},
		{"stored scheme", map[string]string{domain.PrefColorScheme: "red"}, false, domain.ThemeModeLight, domain.ColorSchemeRed, false},
		{"invalid stored values ignored", map[string]string{domain.PrefThemeMode: "sepia", domain.PrefColorScheme: "pink"}, true, domain.ThemeModeDark, domain.ColorSchemeBlue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := New(ctx, testutil.NewMemoryStore(tt.stored), testutil.NewStaticDetector(tt.prefersDark), nil)
			assert.Equal(t, tt.wantMode, th.Mode())
			assert.Equal(t, tt.wantScheme, th.Scheme())
			assert.Equal(t, tt.wantOverride, th.Overridden())
		})
	}
}

func TestNew_StoreErrorUsesDefaults(t *testing.T) {
	store := testutil.NewMemoryStore(map[string]string{domain.PrefColorScheme: "red"})
	store.GetErr = errors.New("locked")
	th := New(context.Background(), store, nil, nil)
	assert.Equal(t, domain.ThemeModeLight, th.Mode())
	assert.Equal(t, domain.ColorSchemeBlue, th.Scheme())
}

func TestApply(t *testing.T) {
	store := testutil.NewMemoryStore(map[string]string{
		domain.PrefThemeMode:   "dark",
		domain.PrefColorScheme: "green",
	})
	th := New(context.Background(), store, nil, nil)
	target := testutil.NewStyleRecorder()

	th.Apply(target)

	assert.Equal(t, "#52c77a", target.Variable(VarPrimary))
	assert.Equal(t, "#6fd394", target.Variable(VarPrimaryHover))
	assert.Equal(t, "#7ddda8", target.Variable(VarPrimaryFocus))
	assert.Equal(t, "#1a1a1a", target.Variable(VarBackground))
	assert.Equal(t, "#ffffff", target.Variable(VarText))
	assert.Equal(t, "#999999", target.Variable(VarTextSecondary))
	assert.Equal(t, "#333333", target.Variable(VarBorder))
	assert.Equal(t, "#ff6b6b", target.Variable(VarAlert))
	assert.Equal(t, "dark", target.Attribute(AttrTheme))
	assert.Equal(t, "green", target.Attribute(AttrColorScheme))
}

func TestSetMode_PersistsAndReapplies(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore(nil)
	th := New(ctx, store, testutil.NewStaticDetector(false), nil)
	target := testutil.NewStyleRecorder()
	th.Attach(target)
	require.Equal(t, "light", target.Attribute(AttrTheme))

	require.NoError(t, th.SetMode(ctx, domain.ThemeModeDark))
	assert.Equal(t, "dark", target.Attribute(AttrTheme))
	assert.Equal(t, "#1a1a1a", target.Variable(VarBackground))
	value, ok := store.Value(domain.PrefThemeMode)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
	assert.True(t, th.Overridden())

	err := th.SetMode(ctx, "sepia")
	require.ErrorIs(t, err, domain.ErrUnsupportedThemeMode)
	assert.Equal(t, domain.ThemeModeDark, th.Mode())
}

func TestToggleMode(t *testing.T) {
	ctx := context.Background()
	th := New(ctx, testutil.NewMemoryStore(nil), nil, nil)

	mode, err := th.ToggleMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeModeDark, mode)

	mode, err = th.ToggleMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeModeLight, mode)
}

func TestSetScheme(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore(nil)
	th := New(ctx, store, nil, nil)
	target := testutil.NewStyleRecorder()
	th.Attach(target)

	require.NoError(t, th.SetScheme(ctx, domain.ColorSchemeOrange))
	assert.Equal(t, "orange", target.Attribute(AttrColorScheme))
	assert.Equal(t, "#E67E22", target.Variable(VarPrimary))
	value, _ := store.Value(domain.PrefColorScheme)
	assert.Equal(t, "orange", value)

	require.ErrorIs(t, th.SetScheme(ctx, "pink"), domain.ErrUnsupportedColorScheme)

	store.SetErr = errors.New("full")
	require.Error(t, th.SetScheme(ctx, domain.ColorSchemeRed))
	assert.Equal(t, domain.ColorSchemeOrange, th.Scheme())
}

func TestNextSchemeMethod(t *testing.T) {
	ctx := context.Background()
	th := New(ctx, testutil.NewMemoryStore(map[string]string{domain.PrefColorScheme: "red"}), nil, nil)

	scheme, err := th.NextScheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorSchemeCyan, scheme)

	scheme, err = th.NextScheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorSchemeBlue, scheme)
}

func TestSystemChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("follows system without override", func(t *testing.T) {
		th := New(ctx, testutil.NewMemoryStore(nil), testutil.NewStaticDetector(false), nil)
		target := testutil.NewStyleRecorder()
		th.Attach(target)

		assert.True(t, th.SystemChanged(true))
		assert.Equal(t, domain.ThemeModeDark, th.Mode())
		assert.Equal(t, "dark", target.Attribute(AttrTheme))

		assert.False(t, th.SystemChanged(true))
	})

	t.Run("ignored with persisted mode", func(t *testing.T) {
		store := testutil.NewMemoryStore(map[string]string{domain.PrefThemeMode: "light"})
		th := New(ctx, store, testutil.NewStaticDetector(true), nil)

		assert.False(t, th.SystemChanged(true))
		assert.Equal(t, domain.ThemeModeLight, th.Mode())
	})

	t.Run("follow system clears override", func(t *testing.T) {
		store := testutil.NewMemoryStore(map[string]string{domain.PrefThemeMode: "light"})
		th := New(ctx, store, nil, nil)

		require.NoError(t, th.FollowSystem(ctx, true))
		assert.False(t, th.Overridden())
		assert.Equal(t, domain.ThemeModeDark, th.Mode())
		_, ok := store.Value(domain.PrefThemeMode)
		assert.False(t, ok)
	})
}
