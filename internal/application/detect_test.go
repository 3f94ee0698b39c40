package application

import (
	"testing"

	"elaris/internal/domain"
)

func TestDetectLanguagePriority(t *testing.T) {
	tests := []struct {
		name     string
		startup  Startup
		stored   string
		fallback domain.Language
		want     domain.Language
	}{
		{name: "path wins over everything", startup: Startup{Path: "/es/servicios", BrowserLocale: "en-US"}, stored: "en", want: domain.ES},
		{name: "bare es path", startup: Startup{Path: "/es"}, stored: "en", want: domain.ES},
		{name: "es-like path is not spanish", startup: Startup{Path: "/espanol"}, want: domain.EN},
		{name: "stored beats browser", startup: Startup{Path: "/", BrowserLocale: "en-GB"}, stored: "es", want: domain.ES},
		{name: "invalid stored ignored", startup: Startup{BrowserLocale: "es-PE"}, stored: "fr", want: domain.ES},
		{name: "stored value must match exactly", startup: Startup{BrowserLocale: "en-US"}, stored: " ES", want: domain.EN},
		{name: "uppercase stored ignored", stored: "ES", fallback: domain.EN, want: domain.EN},
		{name: "browser locale", startup: Startup{BrowserLocale: "es-419"}, want: domain.ES},
		{name: "accept-language list", startup: Startup{BrowserLocale: "es-MX,es;q=0.9,en;q=0.8"}, want: domain.ES},
		{name: "accept-language preference order", startup: Startup{BrowserLocale: "fr;q=0.5,en-US;q=0.9"}, fallback: domain.ES, want: domain.EN},
		{name: "unsupported browser uses fallback", startup: Startup{BrowserLocale: "fr-FR"}, fallback: domain.ES, want: domain.ES},
		{name: "nothing known", want: domain.EN},
		{name: "invalid fallback", fallback: domain.Language("de"), want: domain.EN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.startup, tt.stored, tt.fallback); got != tt.want {
				t.Fatalf("DetectLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanguageFromLocale(t *testing.T) {
	tests := map[string]struct {
		want domain.Language
		ok   bool
	}{
		"es":        {domain.ES, true},
		"ES-es":     {domain.ES, true},
		"en":        {domain.EN, true},
		"pt-BR":     {"", false},
		"":          {"", false},
		"!!":        {"", false},
	}
	for in, tt := range tests {
		got, ok := LanguageFromLocale(in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("LanguageFromLocale(%q) = (%q, %v), want (%q, %v)", in, got, ok, tt.want, tt.ok)
		}
	}
}
