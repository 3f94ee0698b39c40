// Package sitepath maps site URL paths between their English and Spanish forms.
//
// English pages live at the root ("/", "/servicios", ...); Spanish pages
// carry an "/es" prefix ("/es", "/es/servicios", ...).
package sitepath

import "strings"

// SpanishPrefix marks Spanish pages.
const SpanishPrefix = "/es"

// SectionSlugs are the single-page sections that have their own route.
var SectionSlugs = []string{"servicios", "portafolio", "proceso", "clientes", "contacto"}

// IsSpanish reports whether path is "/es" or below it.
func IsSpanish(path string) bool {
	return path == SpanishPrefix || strings.HasPrefix(path, SpanishPrefix+"/")
}

// HasSpanishPrefix reports whether path starts with "/es" at all,
// including paths such as "/espanol" that are not under "/es/".
func HasSpanishPrefix(path string) bool {
	return strings.HasPrefix(path, SpanishPrefix)
}

// ValidPaths returns every routed path, English first.
func ValidPaths() []string {
	out := make([]string, 0, 2*(len(SectionSlugs)+1))
	out = append(out, "/")
	for _, slug := range SectionSlugs {
		out = append(out, "/"+slug)
	}
	out = append(out, SpanishPrefix)
	for _, slug := range SectionSlugs {
		out = append(out, SpanishPrefix+"/"+slug)
	}
	return out
}

// Normalize returns path when it is routed, otherwise the home page of the
// language its prefix suggests.
func Normalize(path string) string {
	for _, valid := range ValidPaths() {
		if path == valid {
			return path
		}
	}
	if HasSpanishPrefix(path) {
		return SpanishPrefix
	}
	return "/"
}

// ToEnglish strips the Spanish prefix.
func ToEnglish(path string) string {
	if !HasSpanishPrefix(path) {
		if path == "" {
			return "/"
		}
		return path
	}
	trimmed := strings.TrimPrefix(path, SpanishPrefix)
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// ToSpanish adds the Spanish prefix.
func ToSpanish(path string) string {
	if HasSpanishPrefix(path) {
		return path
	}
	if path == "/" || path == "" {
		return SpanishPrefix
	}
	return SpanishPrefix + path
}
