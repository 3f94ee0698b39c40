package i18n

import (
	"fmt"
	"log"
	"sync"

	"github.com/mitchellh/mapstructure"

	"elaris/internal/domain"
	"elaris/internal/ports/output"
)

// Ensure Resolver implements the output ports.
var (
	_ output.Translator = (*Resolver)(nil)
	_ output.Catalog    = (*Resolver)(nil)
)

// MissHandler observes keys that failed to resolve.
type MissHandler func(lang domain.Language, key string)

// Resolver walks per-language dictionaries to resolve site copy.
// It is safe for concurrent use; dictionaries are never mutated after construction.
type Resolver struct {
	dictionaries map[domain.Language]*Dictionary
	onMiss       MissHandler
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMissHandler installs a hook called for every unresolved lookup.
func WithMissHandler(h MissHandler) Option {
	return func(r *Resolver) { r.onMiss = h }
}

// NewResolver builds a Resolver over the given dictionaries.
func NewResolver(dictionaries map[domain.Language]*Dictionary, opts ...Option) *Resolver {
	copied := make(map[domain.Language]*Dictionary, len(dictionaries))
	for lang, d := range dictionaries {
		copied[lang] = d
	}
	r := &Resolver{dictionaries: copied}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// T resolves key for lang. Strings get {name} placeholders replaced from
// params; numbers and booleans are converted to text. Anything else,
// including a missing key or language, returns key unchanged.
func (r *Resolver) T(lang domain.Language, key string, params map[string]any) string {
	value, ok := r.lookup(lang, key)
	if !ok {
		return key
	}
	if s, isString := value.(string); isString {
		return interpolate(s, params)
	}
	if s, isScalar := scalarString(value); isScalar {
		return s
	}
	r.miss(lang, key)
	return key
}

// TArray resolves key for lang to a sequence, stringifying every element.
// It returns an empty slice when the key does not resolve to a sequence.
func (r *Resolver) TArray(lang domain.Language, key string) []string {
	value, ok := r.lookup(lang, key)
	if !ok {
		return []string{}
	}
	items, isSeq := value.([]any)
	if !isSeq {
		r.miss(lang, key)
		return []string{}
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = stringify(item)
	}
	return out
}

// Lookup returns the raw node at key for lang.
func (r *Resolver) Lookup(lang domain.Language, key string) (any, bool) {
	d, ok := r.dictionaries[lang]
	if !ok {
		return nil, false
	}
	return d.Lookup(key)
}

// Bind decodes the subtree at key into out, which must be a pointer.
// Field names match dictionary keys case-insensitively, or via `mapstructure` tags.
func (r *Resolver) Bind(lang domain.Language, key string, out any) error {
	value, ok := r.Lookup(lang, key)
	if !ok {
		return fmt.Errorf("bind %s/%s: %w", lang, key, domain.ErrKeyNotFound)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("bind %s/%s: %w", lang, key, err)
	}
	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("bind %s/%s: %w", lang, key, err)
	}
	return nil
}

// Languages returns the languages this resolver has dictionaries for,
// in the order of domain.SupportedLanguages.
func (r *Resolver) Languages() []domain.Language {
	out := make([]domain.Language, 0, len(r.dictionaries))
	for _, lang := range domain.SupportedLanguages() {
		if _, ok := r.dictionaries[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

func (r *Resolver) lookup(lang domain.Language, key string) (any, bool) {
	value, ok := r.Lookup(lang, key)
	if !ok {
		r.miss(lang, key)
	}
	return value, ok
}

func (r *Resolver) miss(lang domain.Language, key string) {
	if r.onMiss != nil {
		r.onMiss(lang, key)
	}
}

// LogMissesOnce returns a MissHandler that logs each (language, key) pair the
// first time it fails to resolve.
func LogMissesOnce() MissHandler {
	var seen sync.Map
	return func(lang domain.Language, key string) {
		if _, loaded := seen.LoadOrStore(string(lang)+"\x00"+key, struct{}{}); loaded {
			return
		}
		log.Printf("⚠️ i18n: missing translation (lang=%s, key=%s)", lang, key)
	}
}
