package i18n

import (
	"errors"
	"reflect"
	"testing"

	"elaris/internal/domain"
)

func mustDictionary(t *testing.T, doc string) *Dictionary {
	t.Helper()
	root, err := decodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	d, err := NewDictionary(root)
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	return d
}

func testResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	return NewResolver(map[domain.Language]*Dictionary{
		domain.EN: mustDictionary(t, `{
			"greeting": "Hello {name}",
			"pair": "{a} and {b}",
			"list": ["zero", 1, true],
			"count": 42,
			"ratio": 0.5,
			"enabled": false,
			"nothing": null,
			"nested": {"deep": {"value": "found"}},
			"mixed": [{"label": "x"}, null, ["a", "b"]],
			"footer": {"items": ["Home", "Services"]},
			"onlyEnglish": "only here"
		}`),
		domain.ES: mustDictionary(t, `{
			"greeting": "Hola {name}",
			"list": ["cero", 1, true],
			"footer": {"items": ["Inicio", "Servicios"]}
		}`),
	}, opts...)
}

func TestResolverT(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name   string
		lang   domain.Language
		key    string
		params map[string]any
		want   string
	}{
		{name: "interpolates", lang: domain.EN, key: "greeting", params: map[string]any{"name": "World"}, want: "Hello World"},
		{name: "no params keeps placeholder", lang: domain.EN, key: "greeting", want: "Hello {name}"},
		{name: "unknown param ignored", lang: domain.EN, key: "greeting", params: map[string]any{"other": "x"}, want: "Hello {name}"},
		{name: "numeric param", lang: domain.EN, key: "greeting", params: map[string]any{"name": 2025}, want: "Hello 2025"},
		{name: "single pass", lang: domain.EN, key: "pair", params: map[string]any{"a": "{b}", "b": "B"}, want: "{b} and B"},
		{name: "nested", lang: domain.EN, key: "nested.deep.value", want: "found"},
		{name: "index", lang: domain.EN, key: "list.0", want: "zero"},
		{name: "index number", lang: domain.EN, key: "list.1", want: "1"},
		{name: "index bool", lang: domain.EN, key: "list.2", want: "true"},
		{name: "out of bounds", lang: domain.EN, key: "list.5", want: "list.5"},
		{name: "negative index", lang: domain.EN, key: "list.-1", want: "list.-1"},
		{name: "non numeric index", lang: domain.EN, key: "list.first", want: "list.first"},
		{name: "integer leaf", lang: domain.EN, key: "count", want: "42"},
		{name: "float leaf", lang: domain.EN, key: "ratio", want: "0.5"},
		{name: "bool leaf", lang: domain.EN, key: "enabled", want: "false"},
		{name: "null leaf", lang: domain.EN, key: "nothing", want: "nothing"},
		{name: "mapping is not scalar", lang: domain.EN, key: "nested", want: "nested"},
		{name: "sequence is not scalar", lang: domain.EN, key: "list", want: "list"},
		{name: "path through scalar", lang: domain.EN, key: "count.more", want: "count.more"},
		{name: "path through null", lang: domain.EN, key: "nothing.more", want: "nothing.more"},
		{name: "missing", lang: domain.EN, key: "nonexistent.path", want: "nonexistent.path"},
		{name: "empty key", lang: domain.EN, key: "", want: ""},
		{name: "no cross-language fallback", lang: domain.ES, key: "onlyEnglish", want: "onlyEnglish"},
		{name: "unknown language", lang: domain.Language("fr"), key: "greeting", want: "greeting"},
		{name: "spanish", lang: domain.ES, key: "greeting", params: map[string]any{"name": "Mundo"}, want: "Hola Mundo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.T(tt.lang, tt.key, tt.params); got != tt.want {
				t.Fatalf("T(%s, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestResolverTArray(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name string
		lang domain.Language
		key  string
		want []string
	}{
		{name: "strings", lang: domain.EN, key: "footer.items", want: []string{"Home", "Services"}},
		{name: "stringified", lang: domain.EN, key: "list", want: []string{"zero", "1", "true"}},
		{name: "composite elements", lang: domain.EN, key: "mixed", want: []string{`{"label":"x"}`, "null", `["a","b"]`}},
		{name: "scalar", lang: domain.EN, key: "greeting", want: []string{}},
		{name: "mapping", lang: domain.EN, key: "nested", want: []string{}},
		{name: "missing", lang: domain.EN, key: "nope", want: []string{}},
		{name: "spanish", lang: domain.ES, key: "footer.items", want: []string{"Inicio", "Servicios"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.TArray(tt.lang, tt.key)
			if got == nil {
				t.Fatal("TArray returned nil, want empty slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("TArray(%s, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestResolverMissHandler(t *testing.T) {
	var misses []string
	r := testResolver(t, WithMissHandler(func(lang domain.Language, key string) {
		misses = append(misses, string(lang)+":"+key)
	}))

	r.T(domain.EN, "greeting", nil)
	r.T(domain.EN, "missing.key", nil)
	r.T(domain.EN, "nested", nil)
	r.TArray(domain.ES, "greeting")

	want := []string{"en:missing.key", "en:nested", "es:greeting"}
	if !reflect.DeepEqual(misses, want) {
		t.Fatalf("misses = %q, want %q", misses, want)
	}
}

func TestResolverBind(t *testing.T) {
	r := testResolver(t)

	var deep struct {
		Value string `mapstructure:"value"`
	}
	if err := r.Bind(domain.EN, "nested.deep", &deep); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if deep.Value != "found" {
		t.Fatalf("deep.Value = %q, want found", deep.Value)
	}

	var items []string
	if err := r.Bind(domain.ES, "footer.items", &items); err != nil {
		t.Fatalf("bind items: %v", err)
	}
	if !reflect.DeepEqual(items, []string{"Inicio", "Servicios"}) {
		t.Fatalf("items = %q", items)
	}

	err := r.Bind(domain.EN, "nested.missing", &deep)
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("bind missing err = %v, want ErrKeyNotFound", err)
	}
}

func TestResolverLanguages(t *testing.T) {
	r := testResolver(t)
	want := []domain.Language{domain.EN, domain.ES}
	if got := r.Languages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Languages() = %v, want %v", got, want)
	}
}
