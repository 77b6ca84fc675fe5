package theme

import "github.com/CrueChan/Timer/internal/domain"

// Palette is the set of named colors for one scheme and mode.
type Palette struct {
	Primary       string
	PrimaryHover  string
	PrimaryFocus  string
	Background    string
	Text          string
	TextSecondary string
	Border        string
	Alert         string
}

// Style variable names written by Apply.
const (
	VarPrimary       = "--primary-color"
	VarPrimaryHover  = "--primary-hover"
	VarPrimaryFocus  = "--primary-focus"
	VarBackground    = "--background-color"
	VarText          = "--text-color"
	VarTextSecondary = "--text-secondary"
	VarBorder        = "--border-color"
	VarAlert         = "--alert-color"

	AttrTheme       = "data-theme"
	AttrColorScheme = "data-color-scheme"
)

// Variables returns the palette keyed by style variable name.
func (p Palette) Variables() map[string]string {
	return map[string]string{
		VarPrimary:       p.Primary,
		VarPrimaryHover:  p.PrimaryHover,
		VarPrimaryFocus:  p.PrimaryFocus,
		VarBackground:    p.Background,
		VarText:          p.Text,
		VarTextSecondary: p.TextSecondary,
		VarBorder:        p.Border,
		VarAlert:         p.Alert,
	}
}

func light(primary, hover, focus string) Palette {
	return Palette{
		Primary:       primary,
		PrimaryHover:  hover,
		PrimaryFocus:  focus,
		Background:    "#ffffff",
		Text:          "#000000",
		TextSecondary: "#666666",
		Border:        "#e0e0e0",
		Alert:         "#ff0000",
	}
}

func dark(primary, hover, focus string) Palette {
	return Palette{
		Primary:       primary,
		PrimaryHover:  hover,
		PrimaryFocus:  focus,
		Background:    "#1a1a1a",
		Text:          "#ffffff",
		TextSecondary: "#999999",
		Border:        "#333333",
		Alert:         "#ff6b6b",
	}
}

var palettes = map[domain.ColorScheme]map[domain.ThemeMode]Palette{
	domain.ColorSchemeBlue: {
		domain.ThemeModeLight: light("#14306B", "#0d1f47", "#4a90e2"),
		domain.ThemeModeDark:  dark("#3d6bb8", "#5a8fd4", "#7ba3e0"),
	},
	domain.ColorSchemePurple: {
		domain.ThemeModeLight: light("#7B3FF2", "#6a35d1", "#9966ff"),
		domain.ThemeModeDark:  dark("#9d6de0", "#b08ce8", "#b08ce8"),
	},
	domain.ColorSchemeGreen: {
		domain.ThemeModeLight: light("#27AE60", "#229954", "#52c77a"),
		domain.ThemeModeDark:  dark("#52c77a", "#6fd394", "#7ddda8"),
	},
	domain.ColorSchemeOrange: {
		domain.ThemeModeLight: light("#E67E22", "#d67c1b", "#f39c12"),
		domain.ThemeModeDark:  dark("#f39c12", "#f8b739", "#fdc55d"),
	},
	domain.ColorSchemeRed: {
		domain.ThemeModeLight: light("#E74C3C", "#c0392b", "#e67e73"),
		domain.ThemeModeDark:  dark("#e67e73", "#ec9d96", "#f1b5ad"),
	},
	domain.ColorSchemeCyan: {
		domain.ThemeModeLight: light("#1ABC9C", "#16a085", "#48c9b0"),
		domain.ThemeModeDark:  dark("#48c9b0", "#6ad9c4", "#8ce5d6"),
	},
}

// PaletteFor returns the palette for scheme and mode. Unknown values fall
// back to the default scheme and light mode.
func PaletteFor(scheme domain.ColorScheme, mode domain.ThemeMode) Palette {
	byMode, ok := palettes[scheme]
	if !ok {
		byMode = palettes[domain.DefaultColorScheme]
	}
	p, ok := byMode[mode]
	if !ok {
		p = byMode[domain.ThemeModeLight]
	}
	return p
}

// SchemeColor returns the swatch color for scheme (its light primary).
func SchemeColor(scheme domain.ColorScheme) string {
	return PaletteFor(scheme, domain.ThemeModeLight).Primary
}
