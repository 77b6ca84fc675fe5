package domain

// Storage keys for persisted preferences.
const (
	PrefLanguage    = "timerLanguage"
	PrefThemeMode   = "timerThemeMode"
	PrefColorScheme = "timerColorScheme"
)

// Language is a supported display language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"

	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists languages in toggle order.
var SupportedLanguages = []Language{LanguageEnglish, LanguageChinese}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, s := range SupportedLanguages {
		if s == l {
			return true
		}
	}
	return false
}

// ThemeMode is light or dark.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// SupportedThemeModes lists the theme modes.
var SupportedThemeModes = []ThemeMode{ThemeModeLight, ThemeModeDark}

// Valid reports whether m is a supported mode.
func (m ThemeMode) Valid() bool {
	return m == ThemeModeLight || m == ThemeModeDark
}

// Opposite returns the other mode.
func (m ThemeMode) Opposite() ThemeMode {
	if m == ThemeModeDark {
		return ThemeModeLight
	}
	return ThemeModeDark
}

// ColorScheme names an accent palette.
type ColorScheme string

const (
	ColorSchemeBlue   ColorScheme = "blue"
	ColorSchemePurple ColorScheme = "purple"
	ColorSchemeGreen  ColorScheme = "green"
	ColorSchemeOrange ColorScheme = "orange"
	ColorSchemeRed    ColorScheme = "red"
	ColorSchemeCyan   ColorScheme = "cyan"

	DefaultColorScheme = ColorSchemeBlue
)

// SupportedColorSchemes lists schemes in cycling order.
var SupportedColorSchemes = []ColorScheme{
	ColorSchemeBlue,
	ColorSchemePurple,
	ColorSchemeGreen,
	ColorSchemeOrange,
	ColorSchemeRed,
	ColorSchemeCyan,
}

// Valid reports whether c is a supported scheme.
func (c ColorScheme) Valid() bool {
	for _, s := range SupportedColorSchemes {
		if s == c {
			return true
		}
	}
	return false
}

// Preferences is a snapshot of every persisted preference.
type Preferences struct {
	Language    Language    `yaml:"language" json:"language"`
	ThemeMode   ThemeMode   `yaml:"theme_mode" json:"theme_mode"`
	ColorScheme ColorScheme `yaml:"color_scheme" json:"color_scheme"`
	// ModeOverride is false when the mode follows the system appearance.
	ModeOverride bool `yaml:"mode_override" json:"mode_override"`
}
