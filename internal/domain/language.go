package domain

import "strings"

// Language is one of the languages the site copy is written in.
type Language string

const (
	ES Language = "es"
	EN Language = "en"
)

// DefaultLanguage is used when nothing else decides the language.
const DefaultLanguage = EN

// StorageKey is the well-known key the language choice is persisted under.
const StorageKey = "elaris-lang"

// SupportedLanguages returns all supported languages in a stable order.
func SupportedLanguages() []Language {
	return []Language{EN, ES}
}

// ParseLanguage returns the Language for an exact code ("es" or "en").
// Surrounding whitespace and case are ignored; region subtags are not.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case ES:
		return ES, nil
	case EN:
		return EN, nil
	default:
		return "", ErrUnsupportedLanguage
	}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == ES || l == EN
}

func (l Language) String() string {
	return string(l)
}

// LocaleCode returns the BCP 47 locale used in structured data.
func (l Language) LocaleCode() string {
	if l == ES {
		return "es-ES"
	}
	return "en-US"
}

// OpenGraphLocale returns the og:locale value.
func (l Language) OpenGraphLocale() string {
	if l == ES {
		return "es_ES"
	}
	return "en_US"
}

// Other returns the other language, for language switchers.
func (l Language) Other() Language {
	if l == ES {
		return EN
	}
	return ES
}
