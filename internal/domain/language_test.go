package domain

import (
	"errors"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "es", want: ES},
		{in: "en", want: EN},
		{in: " EN ", want: EN},
		{in: "es-PE", wantErr: true},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedLanguage) {
				t.Fatalf("ParseLanguage(%q) err = %v, want ErrUnsupportedLanguage", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguageLocales(t *testing.T) {
	if got := ES.LocaleCode(); got != "es-ES" {
		t.Fatalf("ES.LocaleCode() = %q, want es-ES", got)
	}
	if got := EN.OpenGraphLocale(); got != "en_US" {
		t.Fatalf("EN.OpenGraphLocale() = %q, want en_US", got)
	}
	if EN.Other() != ES || ES.Other() != EN {
		t.Fatal("Other should swap es and en")
	}
	if Language("fr").Valid() {
		t.Fatal("fr should not be valid")
	}
}
