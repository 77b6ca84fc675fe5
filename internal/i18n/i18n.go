// Package i18n provides the static translation table and the Localizer
// that tracks the active language.
//
// Lookup order: active language, then the default language, then the key
// itself. Lookups never fail and never return an empty string.
package i18n

import (
	"fmt"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/CrueChan/Timer/internal/domain"
)

// bundle holds every compiled-in message.
var bundle = newBundle()

// localizers caches one go-i18n localizer per supported language.
var localizers = newLocalizers()

func languageTag(lang domain.Language) language.Tag {
	switch lang {
	case domain.LanguageChinese:
		return language.Chinese
	default:
		return language.English
	}
}

func newBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(languageTag(domain.DefaultLanguage))
	for lang, table := range messages {
		msgs := make([]*goi18n.Message, 0, len(table))
		for id, text := range table {
			msgs = append(msgs, &goi18n.Message{ID: id, Other: text})
		}
		if err := b.AddMessages(languageTag(lang), msgs...); err != nil {
			panic(fmt.Sprintf("i18n: invalid messages for %s: %v", lang, err))
		}
	}
	return b
}

func newLocalizers() map[domain.Language]*goi18n.Localizer {
	m := make(map[domain.Language]*goi18n.Localizer, len(domain.SupportedLanguages))
	for _, lang := range domain.SupportedLanguages {
		m[lang] = goi18n.NewLocalizer(bundle, string(lang))
	}
	return m
}

// lookup returns the message for key in exactly lang, or "".
func lookup(lang domain.Language, key string) string {
	if table, ok := messages[lang]; !ok || table[key] == "" {
		return ""
	}
	loc, ok := localizers[lang]
	if !ok {
		return ""
	}
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return ""
	}
	return msg
}

// Translate returns key in lang, falling back to the default language and
// finally to the key itself.
func Translate(lang domain.Language, key string) string {
	if msg := lookup(lang, key); msg != "" {
		return msg
	}
	if msg := lookup(domain.DefaultLanguage, key); msg != "" {
		return msg
	}
	return key
}

// ResolveInitial picks the startup language: a valid stored preference,
// else the first supported language the host locale starts with, else
// the default.
func ResolveInitial(stored, locale string) domain.Language {
	if lang := domain.Language(stored); lang.Valid() {
		return lang
	}
	return MatchLocale(locale)
}

// MatchLocale maps a host locale such as "zh-CN" or "zh_TW.UTF-8" to a
// supported language by prefix.
func MatchLocale(locale string) domain.Language {
	locale = strings.ToLower(strings.TrimSpace(locale))
	for _, lang := range domain.SupportedLanguages {
		if strings.HasPrefix(locale, string(lang)) {
			return lang
		}
	}
	return domain.DefaultLanguage
}

// Next returns the language after lang in enumeration order, wrapping.
// With two languages this is the other one.
func Next(lang domain.Language) domain.Language {
	for i, l := range domain.SupportedLanguages {
		if l == lang {
			return domain.SupportedLanguages[(i+1)%len(domain.SupportedLanguages)]
		}
	}
	return domain.DefaultLanguage
}

// DetectLocale returns the host locale, or "" when it cannot be read.
func DetectLocale() string {
	loc, err := golocale.GetLocale()
	if err != nil {
		return ""
	}
	return loc
}
