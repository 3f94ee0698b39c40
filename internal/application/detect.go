package application

import (
	"strings"

	"golang.org/x/text/language"

	"elaris/internal/domain"
	"elaris/pkg/sitepath"
)

// Startup carries what the environment tells us about the visitor before
// any explicit choice: the requested path and the browser locale (a single
// tag such as "es-PE" or a full Accept-Language header).
type Startup struct {
	Path          string
	BrowserLocale string
}

// DetectLanguage picks the initial language in priority order: the path
// prefix, a previously stored choice, the browser locale, then fallback.
// A stored value counts only when it is exactly "es" or "en".
func DetectLanguage(s Startup, stored string, fallback domain.Language) domain.Language {
	if lang, ok := LanguageFromPath(s.Path); ok {
		return lang
	}
	if lang := domain.Language(stored); lang.Valid() {
		return lang
	}
	if lang, ok := LanguageFromLocale(s.BrowserLocale); ok {
		return lang
	}
	if fallback.Valid() {
		return fallback
	}
	return domain.DefaultLanguage
}

// LanguageFromPath reports the language a path prefix selects. Only the
// Spanish prefix selects anything; English pages have no prefix.
func LanguageFromPath(path string) (domain.Language, bool) {
	if sitepath.IsSpanish(path) {
		return domain.ES, true
	}
	return "", false
}

// LanguageFromLocale matches the primary subtag of the most preferred locale
// against the supported languages.
func LanguageFromLocale(locale string) (domain.Language, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", false
	}

	var tag language.Tag
	if strings.ContainsAny(locale, ",;") {
		tags, _, err := language.ParseAcceptLanguage(locale)
		if err != nil || len(tags) == 0 {
			return "", false
		}
		tag = tags[0]
	} else {
		parsed, err := language.Parse(locale)
		if err != nil {
			return "", false
		}
		tag = parsed
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	lang, err := domain.ParseLanguage(base.String())
	if err != nil {
		return "", false
	}
	return lang, true
}
