package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"elaris/internal/domain"
	"elaris/internal/ports/input"
	"elaris/internal/ports/output"
	"elaris/pkg/sitepath"
)

var _ input.LanguageSessionUseCase = (*Session)(nil)

// Session owns the active language. It is the single writer; everything
// that renders copy reads through it or through Bindings.
type Session struct {
	translator output.Translator
	store      output.PreferenceStore
	document   output.Document
	storageKey string

	// writeMu serialises changes so state, document and store agree.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	lang      domain.Language
	observers map[int]func(domain.Language)
	nextID    int
}

// SessionConfig wires a Session.
type SessionConfig struct {
	Translator output.Translator
	Store      output.PreferenceStore
	Document   output.Document
	// StorageKey defaults to domain.StorageKey.
	StorageKey string
	// Fallback is used when detection finds nothing; defaults to domain.DefaultLanguage.
	Fallback domain.Language
}

// NewSession detects the initial language, then persists it and writes the
// document attribute. A store that fails to load is treated as empty.
func NewSession(ctx context.Context, cfg SessionConfig, startup Startup) (*Session, error) {
	if cfg.Translator == nil {
		return nil, errors.New("session: translator is required")
	}
	s := &Session{
		translator: cfg.Translator,
		store:      cfg.Store,
		document:   cfg.Document,
		storageKey: cfg.StorageKey,
		observers:  map[int]func(domain.Language){},
	}
	if s.storageKey == "" {
		s.storageKey = domain.StorageKey
	}

	stored := ""
	if s.store != nil {
		v, err := s.store.Load(ctx, s.storageKey)
		switch {
		case err == nil:
			stored = v
		case errors.Is(err, domain.ErrPreferenceNotFound):
		default:
			log.Printf("session: load stored language: %v", err)
		}
	}

	s.lang = DetectLanguage(startup, stored, cfg.Fallback)
	s.applyDocument(s.lang)
	if err := s.persist(ctx, s.lang); err != nil {
		return s, err
	}
	return s, nil
}

// Language returns the active language.
func (s *Session) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage makes lang active, updates the document attribute, notifies
// observers and persists the choice. If persisting fails the change still
// stands and the error is returned.
func (s *Session) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("set language %q: %w", lang, domain.ErrUnsupportedLanguage)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.lang = lang
	observers := make([]func(domain.Language), 0, len(s.observers))
	for _, id := range s.sortedObserverIDs() {
		observers = append(observers, s.observers[id])
	}
	s.mu.Unlock()

	s.applyDocument(lang)
	for _, fn := range observers {
		fn(lang)
	}
	return s.persist(ctx, lang)
}

// SyncPath aligns the active language with a navigated path: Spanish paths
// select es and every other path selects en.
func (s *Session) SyncPath(ctx context.Context, path string) error {
	next := domain.EN
	if sitepath.HasSpanishPrefix(path) {
		next = domain.ES
	}
	if next == s.Language() {
		return nil
	}
	return s.SetLanguage(ctx, next)
}

// T resolves key in the active language.
func (s *Session) T(key string, params map[string]any) string {
	return s.translator.T(s.Language(), key, params)
}

// TArray resolves key to a sequence in the active language.
func (s *Session) TArray(key string) []string {
	return s.translator.TArray(s.Language(), key)
}

// Subscribe registers fn to run after every language change. fn runs while
// the change is in progress and must not call SetLanguage or SyncPath.
func (s *Session) Subscribe(fn func(domain.Language)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Bindings is the consumer-facing view of a session: the language at the
// time it was taken and lookups bound to that language. Take a fresh one
// after a change.
type Bindings struct {
	Language    domain.Language
	T           func(key string, params map[string]any) string
	TArray      func(key string) []string
	SetLanguage func(ctx context.Context, lang domain.Language) error
}

// Bindings snapshots the session for a consumer.
func (s *Session) Bindings() Bindings {
	lang := s.Language()
	return Bindings{
		Language: lang,
		T: func(key string, params map[string]any) string {
			return s.translator.T(lang, key, params)
		},
		TArray: func(key string) []string {
			return s.translator.TArray(lang, key)
		},
		SetLanguage: s.SetLanguage,
	}
}

func (s *Session) applyDocument(lang domain.Language) {
	if s.document != nil {
		s.document.SetLang(string(lang))
	}
}

func (s *Session) persist(ctx context.Context, lang domain.Language) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, s.storageKey, string(lang)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}

// sortedObserverIDs returns observer ids in registration order; callers hold mu.
func (s *Session) sortedObserverIDs() []int {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
