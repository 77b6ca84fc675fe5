package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/ports"
	"github.com/CrueChan/Timer/internal/theme"
)

// Theme mode inputs beyond the two modes themselves.
const (
	ModeInputToggle = "toggle"
	ModeInputSystem = "system"
)

// PreferenceService handles language and appearance preferences for the
// CLI and MCP surfaces.
type PreferenceService struct {
	store     ports.PreferenceStore
	localizer *i18n.Localizer
	theme     *theme.Theme
	detector  ports.AppearanceDetector
	logger    *zap.Logger
}

// Ensure PreferenceService implements ports.PreferenceProvider.
var _ ports.PreferenceProvider = (*PreferenceService)(nil)

// NewPreferenceService creates a new preference service.
func NewPreferenceService(store ports.PreferenceStore, localizer *i18n.Localizer, th *theme.Theme, detector ports.AppearanceDetector, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{
		store:     store,
		localizer: localizer,
		theme:     th,
		detector:  detector,
		logger:    logger,
	}
}

// Snapshot returns the active preferences.
func (s *PreferenceService) Snapshot() domain.Preferences {
	return domain.Preferences{
		Language:     s.localizer.Language(),
		ThemeMode:    s.theme.Mode(),
		ColorScheme:  s.theme.Scheme(),
		ModeOverride: s.theme.Overridden(),
	}
}

// Translate looks up key in the active language.
func (s *PreferenceService) Translate(key string) string {
	return s.localizer.T(key)
}

// SetLanguage matches input against the supported languages and
// switches to the best match.
func (s *PreferenceService) SetLanguage(ctx context.Context, input string) (domain.Language, error) {
	lang, err := MatchLanguage(input)
	if err != nil {
		return s.localizer.Language(), err
	}
	if err := s.localizer.SetLanguage(ctx, lang); err != nil {
		return s.localizer.Language(), err
	}
	return lang, nil
}

// SetThemeMode accepts light, dark, toggle or system (and fuzzy
// abbreviations of them).
func (s *PreferenceService) SetThemeMode(ctx context.Context, input string) (domain.ThemeMode, error) {
	choice, err := matchOne(input, []string{
		string(domain.ThemeModeLight),
		string(domain.ThemeModeDark),
		ModeInputToggle,
		ModeInputSystem,
	})
	if err != nil {
		return s.theme.Mode(), fmt.Errorf("%w: %q", domain.ErrUnsupportedThemeMode, input)
	}

	switch choice {
	case ModeInputToggle:
		return s.theme.ToggleMode(ctx)
	case ModeInputSystem:
		dark := s.detector != nil && s.detector.PrefersDark()
		if err := s.theme.FollowSystem(ctx, dark); err != nil {
			return s.theme.Mode(), err
		}
		return s.theme.Mode(), nil
	default:
		mode := domain.ThemeMode(choice)
		if err := s.theme.SetMode(ctx, mode); err != nil {
			return s.theme.Mode(), err
		}
		return mode, nil
	}
}

// SetColorScheme matches input against the supported schemes.
func (s *PreferenceService) SetColorScheme(ctx context.Context, input string) (domain.ColorScheme, error) {
	scheme, err := MatchColorScheme(input)
	if err != nil {
		return s.theme.Scheme(), err
	}
	if err := s.theme.SetScheme(ctx, scheme); err != nil {
		return s.theme.Scheme(), err
	}
	return scheme, nil
}

// Import applies stored-format preference values. Unsupported values are
// skipped with a warning; the number of applied values is returned.
func (s *PreferenceService) Import(ctx context.Context, values map[string]string) (int, error) {
	applied := 0
	for _, key := range []string{domain.PrefLanguage, domain.PrefThemeMode, domain.PrefColorScheme} {
		value, ok := values[key]
		if !ok {
			continue
		}

		var err error
		switch key {
		case domain.PrefLanguage:
			err = s.localizer.SetLanguage(ctx, domain.Language(value))
		case domain.PrefThemeMode:
			err = s.theme.SetMode(ctx, domain.ThemeMode(value))
		case domain.PrefColorScheme:
			err = s.theme.SetScheme(ctx, domain.ColorScheme(value))
		}
		if err != nil {
			s.logger.Warn("skipping imported preference",
				zap.String("key", key),
				zap.String("value", value),
				zap.Error(err))
			continue
		}
		applied++
	}
	return applied, nil
}

// Clear removes every persisted preference. The running instance keeps
// its current state; the next start resolves from detection.
func (s *PreferenceService) Clear(ctx context.Context) error {
	for _, key := range []string{domain.PrefLanguage, domain.PrefThemeMode, domain.PrefColorScheme} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	s.logger.Info("preferences cleared")
	return nil
}

// Stored returns the raw persisted values.
func (s *PreferenceService) Stored(ctx context.Context) (map[string]string, error) {
	values, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	return values, nil
}

type languageAlias struct {
	name string
	lang domain.Language
}

var languageAliases = []languageAlias{
	{name: "english", lang: domain.LanguageEnglish},
	{name: "chinese", lang: domain.LanguageChinese},
	{name: "中文", lang: domain.LanguageChinese},
	{name: "简体中文", lang: domain.LanguageChinese},
}

const minFuzzyLanguage = 3

// MatchLanguage resolves user input such as "zh", "zh-CN", "chin" or
// "English" to a supported language.
func MatchLanguage(input string) (domain.Language, error) {
	norm := strings.ToLower(strings.TrimSpace(input))
	if norm == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrUnsupportedLanguage)
	}
	if lang := domain.Language(norm); lang.Valid() {
		return lang, nil
	}
	for _, lang := range domain.SupportedLanguages {
		code := string(lang)
		if strings.HasPrefix(norm, code+"-") || strings.HasPrefix(norm, code+"_") {
			return lang, nil
		}
	}

	names := make([]string, len(languageAliases))
	for i, alias := range languageAliases {
		if alias.name == norm {
			return alias.lang, nil
		}
		names[i] = alias.name
	}

	// Short codes such as "es" are subsequences of "english"; only
	// longer input that starts like an alias is matched loosely.
	if utf8.RuneCountInString(norm) < minFuzzyLanguage {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, input)
	}
	first, _ := utf8.DecodeRuneInString(norm)
	for _, m := range fuzzy.Find(norm, names) {
		if r, _ := utf8.DecodeRuneInString(m.Str); r == first {
			return languageAliases[m.Index].lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, input)
}

// MatchColorScheme resolves user input such as "pur" to a scheme.
func MatchColorScheme(input string) (domain.ColorScheme, error) {
	names := make([]string, len(domain.SupportedColorSchemes))
	for i, c := range domain.SupportedColorSchemes {
		names[i] = string(c)
	}
	choice, err := matchOne(input, names)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedColorScheme, input)
	}
	return domain.ColorScheme(choice), nil
}

// matchOne returns the exact or best fuzzy match for input among
// candidates.
func matchOne(input string, candidates []string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(input))
	if norm == "" {
		return "", errors.New("empty input")
	}
	for _, c := range candidates {
		if c == norm {
			return c, nil
		}
	}
	matches := fuzzy.Find(norm, candidates)
	if len(matches) == 0 {
		return "", fmt.Errorf("no match for %q", input)
	}
	return matches[0].Str, nil
}
