package output

import "elaris/internal/domain"

// Translator exposes the lookup contract for site copy.
// Implementations never fail: an unresolved key comes back as the key itself
// and an unresolved sequence as an empty slice.
type Translator interface {
	// T resolves key in lang's dictionary and substitutes {name} placeholders
	// from params (may be nil).
	T(lang domain.Language, key string, params map[string]any) string
	// TArray resolves key to a sequence of strings.
	TArray(lang domain.Language, key string) []string
}

// KeyLookup exposes the raw dictionary node at key without interpolation.
// Lookups through it are not reported as misses.
type KeyLookup interface {
	Lookup(lang domain.Language, key string) (any, bool)
}

// Catalog is the full read side of the dictionaries.
type Catalog interface {
	Translator
	KeyLookup
	// Bind decodes the subtree at key into out, which must be a pointer.
	Bind(lang domain.Language, key string, out any) error
}
