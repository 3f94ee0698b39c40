package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"elaris/internal/application"
	"elaris/internal/config"
	"elaris/internal/domain"
	"elaris/internal/infrastructure/htmldoc"
	"elaris/internal/infrastructure/i18n"
	"elaris/internal/infrastructure/storage"
	"elaris/pkg/sitepath"
	"elaris/pkg/tz"
)

type options struct {
	path          string
	browserLocale string
	setLang       string
	navigate      []string
	toggle        bool
	keys          []string
	arrays        []string
	params        []string
	audit         bool
	seo           string
}

func main() {
	var opts options
	pflag.StringVar(&opts.path, "path", "/", "requested page path")
	pflag.StringVar(&opts.browserLocale, "browser-locale", posixLocale(os.Getenv("LANG")), "browser locale or Accept-Language header")
	pflag.StringVar(&opts.setLang, "set-lang", "", "switch to this language (es|en) and persist it")
	pflag.StringArrayVar(&opts.navigate, "navigate", nil, "follow a path after startup; /es paths select es, others en (repeatable)")
	pflag.BoolVar(&opts.toggle, "toggle", false, "switch to the other language, as the navbar toggle does")
	pflag.StringArrayVar(&opts.keys, "key", nil, "resolve a scalar key (repeatable)")
	pflag.StringArrayVar(&opts.arrays, "array", nil, "resolve a sequence key (repeatable)")
	pflag.StringArrayVar(&opts.params, "param", nil, "interpolation parameter name=value (repeatable)")
	pflag.BoolVar(&opts.audit, "audit", false, "check every call-site key in every language")
	pflag.StringVar(&opts.seo, "seo", "", "print head metadata for a page (home|not-found)")
	pflag.Parse()

	if err := run(context.Background(), opts); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dicts, err := loadDictionaries(cfg)
	if err != nil {
		return err
	}
	var resolverOpts []i18n.Option
	if cfg.WarnMissing {
		resolverOpts = append(resolverOpts, i18n.WithMissHandler(i18n.LogMissesOnce()))
	}
	resolver := i18n.NewResolver(dicts, resolverOpts...)
	messages, err := i18n.NewMessages(cfg.Fallback)
	if err != nil {
		return err
	}

	store, closeStore, err := storage.Open(ctx, cfg.PreferenceStore, cfg.PreferencePath, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("⚠️ close preference store: %v", err)
		}
	}()

	doc := htmldoc.NewRoot()
	session, err := application.NewSession(ctx, application.SessionConfig{
		Translator: resolver,
		Store:      store,
		Document:   doc,
		StorageKey: cfg.StorageKey,
		Fallback:   cfg.Fallback,
	}, application.Startup{Path: opts.path, BrowserLocale: opts.browserLocale})
	if err != nil {
		if session == nil {
			return err
		}
		log.Printf("⚠️ %v", err)
	}

	unsubscribe := session.Subscribe(func(lang domain.Language) {
		log.Printf("✅ %s", messages.Render(lang, "language_changed", map[string]any{"Language": lang}, nil))
	})
	defer unsubscribe()

	current := opts.path
	for _, path := range opts.navigate {
		if err := session.SyncPath(ctx, path); err != nil {
			log.Printf("⚠️ %v", err)
		}
		current = path
	}

	if opts.setLang != "" {
		lang, err := domain.ParseLanguage(opts.setLang)
		if err != nil {
			return fmt.Errorf("--set-lang: %w", err)
		}
		if err := session.SetLanguage(ctx, lang); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}

	if opts.toggle {
		next := session.Language().Other()
		if err := session.SetLanguage(ctx, next); err != nil {
			log.Printf("⚠️ %v", err)
		}
		current = counterpartPath(current, next)
		fmt.Printf("path = %s\n", current)
	}

	lang := session.Language()
	log.Printf("✅ %s %s", messages.Render(lang, "language_active", map[string]any{"Language": lang}, nil), doc.OpenTag())

	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}
	view := session.Bindings()
	for _, key := range opts.keys {
		fmt.Printf("%s = %s\n", key, view.T(key, params))
	}
	for _, key := range opts.arrays {
		out, err := json.Marshal(view.TArray(key))
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, out)
	}

	if opts.seo != "" {
		page := application.SEOPage(opts.seo)
		if page != application.SEOPageHome && page != application.SEOPageNotFound {
			return fmt.Errorf("--seo must be %q or %q, got %q", application.SEOPageHome, application.SEOPageNotFound, opts.seo)
		}
		meta := application.SEOMetadata(resolver, cfg.SiteURL, current, page, lang)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			return err
		}
	}

	if opts.audit {
		report := application.Audit(resolver, resolver.Languages(), application.CallSites())
		printAudit(messages, lang, report)
		if !report.Clean() {
			return fmt.Errorf("audit found %d issue(s)", len(report.Issues))
		}
	}
	return nil
}

func loadDictionaries(cfg *config.Config) (map[domain.Language]*i18n.Dictionary, error) {
	if cfg.LocalesDir == "" {
		return i18n.LoadEmbedded()
	}
	dicts, err := i18n.LoadFS(os.DirFS(cfg.LocalesDir))
	if err != nil {
		return nil, fmt.Errorf("locales dir %s: %w", cfg.LocalesDir, err)
	}
	log.Printf("✅ Dictionaries loaded from %s", cfg.LocalesDir)
	return dicts, nil
}

// counterpartPath returns the routed page for path in lang.
func counterpartPath(path string, lang domain.Language) string {
	path = sitepath.Normalize(path)
	if lang == domain.ES {
		return sitepath.ToSpanish(path)
	}
	return sitepath.ToEnglish(path)
}

// posixLocale strips the codeset and modifier from a POSIX locale such as
// "es_PE.UTF-8@euro".
func posixLocale(v string) string {
	v, _, _ = strings.Cut(v, ".")
	v, _, _ = strings.Cut(v, "@")
	if v == "C" || v == "POSIX" {
		return ""
	}
	return v
}

// parseParams turns name=value pairs into interpolation params. The footer's
// {year} defaults to the current year in Lima.
func parseParams(raw []string) (map[string]any, error) {
	params := map[string]any{"year": tz.Year(time.Now())}
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("--param %q: expected name=value", pair)
		}
		params[strings.TrimSpace(name)] = value
	}
	return params, nil
}

func printAudit(m *i18n.Messages, lang domain.Language, report application.Report) {
	for _, checked := range report.Languages {
		issues := report.IssuesFor(checked)
		if len(issues) == 0 {
			fmt.Println(m.Render(lang, "audit_clean", map[string]any{"Keys": report.Checked, "Language": checked}, nil))
			continue
		}
		fmt.Println(m.Render(lang, "audit_missing", map[string]any{"Count": len(issues), "Language": checked}, len(issues)))
		for _, issue := range issues {
			reason := m.Render(lang, "reason_"+string(issue.Reason), map[string]any{
				"Kind":        issue.Site.Kind,
				"Placeholder": issue.Placeholder,
			}, nil)
			fmt.Println(m.Render(lang, "audit_issue", map[string]any{"Key": issue.Site.Key, "Reason": reason}, nil))
		}
	}
}
