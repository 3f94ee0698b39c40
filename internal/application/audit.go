package application

import (
	"strings"

	"elaris/internal/domain"
	"elaris/internal/ports/output"
)

// IssueReason says why a call site failed the audit.
type IssueReason string

const (
	ReasonUnresolved         IssueReason = "unresolved"
	ReasonWrongShape         IssueReason = "wrong_shape"
	ReasonMissingPlaceholder IssueReason = "missing_placeholder"
)

// Issue is one failing (language, call site) pair.
type Issue struct {
	Language domain.Language
	Site     CallSite
	Reason   IssueReason
	// Placeholder is set for ReasonMissingPlaceholder.
	Placeholder string
}

// Report is the result of auditing call sites against dictionaries.
type Report struct {
	Languages []domain.Language
	Checked   int
	Issues    []Issue
}

// Clean reports whether every call site resolved in every language.
func (r Report) Clean() bool {
	return len(r.Issues) == 0
}

// IssuesFor returns the issues for one language.
func (r Report) IssuesFor(lang domain.Language) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Language == lang {
			out = append(out, issue)
		}
	}
	return out
}

// Audit checks that every call site resolves to the shape it expects, and
// carries the placeholders it passes, in each language. Lookups never fail
// loudly, so this is how a missing key is caught before a visitor sees it.
// It reads raw nodes, so auditing does not trip the resolver's miss hook.
func Audit(l output.KeyLookup, languages []domain.Language, sites []CallSite) Report {
	report := Report{Languages: languages, Checked: len(sites)}
	for _, lang := range languages {
		for _, site := range sites {
			report.Issues = append(report.Issues, auditSite(l, lang, site)...)
		}
	}
	return report
}

func auditSite(l output.KeyLookup, lang domain.Language, site CallSite) []Issue {
	issue := func(reason IssueReason) []Issue {
		return []Issue{{Language: lang, Site: site, Reason: reason}}
	}

	value, ok := l.Lookup(lang, site.Key)
	if !ok {
		return issue(ReasonUnresolved)
	}

	switch site.Kind {
	case KindArray:
		if _, isSeq := value.([]any); !isSeq {
			return issue(ReasonWrongShape)
		}
		return nil
	default:
		var text string
		switch v := value.(type) {
		case string:
			text = v
		case int64, uint64, float64, bool:
		default:
			return issue(ReasonWrongShape)
		}
		var out []Issue
		for _, name := range site.Placeholders {
			if !strings.Contains(text, "{"+name+"}") {
				out = append(out, Issue{Language: lang, Site: site, Reason: ReasonMissingPlaceholder, Placeholder: name})
			}
		}
		return out
	}
}
