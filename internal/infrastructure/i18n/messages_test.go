package i18n

import (
	"testing"

	"elaris/internal/domain"
)

func TestMessagesRender(t *testing.T) {
	m, err := NewMessages(domain.EN)
	if err != nil {
		t.Fatalf("NewMessages: %v", err)
	}

	tests := []struct {
		lang  domain.Language
		id    string
		data  map[string]any
		count any
		want  string
	}{
		{lang: domain.EN, id: "audit_missing", data: map[string]any{"Count": 1, "Language": "en"}, count: 1, want: "1 key failed to resolve in en:"},
		{lang: domain.EN, id: "audit_missing", data: map[string]any{"Count": 3, "Language": "en"}, count: 3, want: "3 keys failed to resolve in en:"},
		{lang: domain.ES, id: "audit_missing", data: map[string]any{"Count": 2, "Language": "es"}, count: 2, want: "2 claves no se resuelven en es:"},
		{lang: domain.ES, id: "language_changed", data: map[string]any{"Language": "en"}, want: "Idioma cambiado a en"},
		{lang: domain.Language("fr"), id: "language_active", data: map[string]any{"Language": "en"}, want: "Active language: en"},
		{lang: domain.EN, id: "no_such_message", want: "no_such_message"},
	}
	for _, tt := range tests {
		if got := m.Render(tt.lang, tt.id, tt.data, tt.count); got != tt.want {
			t.Fatalf("Render(%s, %s) = %q, want %q", tt.lang, tt.id, got, tt.want)
		}
	}
}

func TestMessagesInvalidDefaultUsesEnglish(t *testing.T) {
	m, err := NewMessages(domain.Language("fr"))
	if err != nil {
		t.Fatalf("NewMessages: %v", err)
	}
	if got := m.Render(domain.Language("de"), "language_active", map[string]any{"Language": "es"}, nil); got != "Active language: es" {
		t.Fatalf("Render = %q, want English fallback", got)
	}
}
