package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"elaris/internal/domain"
)

//go:embed active.*.toml
var messageFS embed.FS

// Messages renders the tool's own output lines (audit reports, language
// changes). Unlike the site dictionaries these need plural forms, which
// go-i18n provides.
type Messages struct {
	localizers map[domain.Language]*i18n.Localizer
	fallback   *i18n.Localizer
}

// NewMessages loads every embedded active.<lang>.toml and prepares one
// localizer per supported language, each falling back to defaultLang.
func NewMessages(defaultLang domain.Language) (*Messages, error) {
	if !defaultLang.Valid() {
		defaultLang = domain.DefaultLanguage
	}
	defaultTag := language.Make(string(defaultLang))
	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFS, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}

	m := &Messages{
		localizers: make(map[domain.Language]*i18n.Localizer, len(domain.SupportedLanguages())),
		fallback:   i18n.NewLocalizer(bundle, string(defaultLang)),
	}
	for _, lang := range domain.SupportedLanguages() {
		m.localizers[lang] = i18n.NewLocalizer(bundle, string(lang), string(defaultLang))
	}
	return m, nil
}

// Render renders message id in lang, or in the default language when lang
// is not supported. count selects the plural form when non-nil. An id that
// cannot be rendered comes back unchanged.
func (m *Messages) Render(lang domain.Language, id string, data map[string]any, count any) string {
	if id == "" {
		return ""
	}
	localizer, ok := m.localizers[lang]
	if !ok {
		localizer = m.fallback
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		log.Printf("⚠️ i18n: render %s for %s: %v", id, lang, err)
		return id
	}
	return msg
}
