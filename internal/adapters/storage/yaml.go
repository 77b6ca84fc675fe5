package storage

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/CrueChan/Timer/internal/domain"
)

// preferencesFile is the on-disk export format.
type preferencesFile struct {
	Version     int    `yaml:"version"`
	Language    string `yaml:"language,omitempty"`
	ThemeMode   string `yaml:"theme_mode,omitempty"`
	ColorScheme string `yaml:"color_scheme,omitempty"`
}

const preferencesFileVersion = 1

// WritePreferencesYAML writes prefs as YAML. A mode that follows the
// system appearance is left out so importing it keeps following it.
func WritePreferencesYAML(w io.Writer, prefs domain.Preferences) error {
	file := preferencesFile{
		Version:     preferencesFileVersion,
		Language:    string(prefs.Language),
		ColorScheme: string(prefs.ColorScheme),
	}
	if prefs.ModeOverride {
		file.ThemeMode = string(prefs.ThemeMode)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}
	return enc.Close()
}

// ReadPreferencesYAML parses an exported preferences file. Values are
// returned as written; callers validate them.
func ReadPreferencesYAML(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var file preferencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse preferences yaml: %w", err)
	}

	values := make(map[string]string)
	if file.Language != "" {
		values[domain.PrefLanguage] = file.Language
	}
	if file.ThemeMode != "" {
		values[domain.PrefThemeMode] = file.ThemeMode
	}
	if file.ColorScheme != "" {
		values[domain.PrefColorScheme] = file.ColorScheme
	}
	return values, nil
}
