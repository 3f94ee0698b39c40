// Package htmldoc holds document-level attributes that follow the active language.
package htmldoc

import (
	"html"
	"sync"

	"elaris/internal/ports/output"
)

var _ output.Document = (*Root)(nil)

// Root is the <html> element of a rendered page.
type Root struct {
	mu   sync.RWMutex
	lang string
}

// NewRoot returns a Root with an empty lang attribute.
func NewRoot() *Root {
	return &Root{}
}

func (r *Root) SetLang(lang string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lang = lang
}

// Lang returns the current lang attribute.
func (r *Root) Lang() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// OpenTag renders the opening <html> tag.
func (r *Root) OpenTag() string {
	lang := r.Lang()
	if lang == "" {
		return "<html>"
	}
	return `<html lang="` + html.EscapeString(lang) + `">`
}
