package i18n

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/ports"
)

// Localizer holds the active language for one application instance.
type Localizer struct {
	mu       sync.RWMutex
	current  domain.Language
	store    ports.PreferenceStore
	logger   *zap.Logger
	onChange []func(domain.Language)
}

// Ensure Localizer implements ports.Translator.
var _ ports.Translator = (*Localizer)(nil)

// NewLocalizer loads the stored language preference, falling back to the
// host locale. A store error is logged and treated as "nothing stored".
func NewLocalizer(ctx context.Context, store ports.PreferenceStore, locale string, logger *zap.Logger) *Localizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	var stored string
	if store != nil {
		value, ok, err := store.Get(ctx, domain.PrefLanguage)
		if err != nil {
			logger.Warn("failed to read language preference", zap.Error(err))
		} else if ok {
			stored = value
		}
	}

	lang := ResolveInitial(stored, locale)
	if stored != "" && string(lang) != stored {
		logger.Info("ignoring unsupported stored language", zap.String("stored", stored))
	}

	return &Localizer{
		current: lang,
		store:   store,
		logger:  logger,
	}
}

// Language returns the active language.
func (l *Localizer) Language() domain.Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// T translates key in the active language.
func (l *Localizer) T(key string) string {
	return Translate(l.Language(), key)
}

// OnChange registers a callback run after every language change.
func (l *Localizer) OnChange(fn func(domain.Language)) {
	l.mu.Lock()
	l.onChange = append(l.onChange, fn)
	l.mu.Unlock()
}

// SetLanguage switches and persists the language.
func (l *Localizer) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}

	if l.store != nil {
		if err := l.store.Set(ctx, domain.PrefLanguage, string(lang)); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}
	}

	l.mu.Lock()
	l.current = lang
	callbacks := append([]func(domain.Language){}, l.onChange...)
	l.mu.Unlock()

	l.logger.Info("language changed", zap.String("language", string(lang)))
	for _, fn := range callbacks {
		fn(lang)
	}
	return nil
}

// Toggle switches to the next supported language.
func (l *Localizer) Toggle(ctx context.Context) (domain.Language, error) {
	next := Next(l.Language())
	if err := l.SetLanguage(ctx, next); err != nil {
		return l.Language(), err
	}
	return next, nil
}
