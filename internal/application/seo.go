package application

import (
	"log"
	"strings"

	"elaris/internal/domain"
	"elaris/internal/domain/entities"
	"elaris/internal/ports/output"
	"elaris/pkg/sitepath"
)

// SEOPage identifies a page with its own metadata copy.
type SEOPage string

const (
	SEOPageHome     SEOPage = "home"
	SEOPageNotFound SEOPage = "not-found"
)

const (
	organizationName = "Elaris Digital Solutions"
	ogImagePath      = "/assets/Elaris-Logo.webp"
	robotsIndex      = "index,follow,max-image-preview:large"
	robotsNoIndex    = "noindex,nofollow"
)

var organizationProfiles = []string{
	"https://www.linkedin.com/company/elaris-digital-solutions/",
	"https://www.instagram.com/elarisdigitalsolutions",
	"https://github.com/Elaris-Digital-Solutions",
	"https://x.com/ElarisSolutions",
}

type featuredService struct {
	name        string
	description string
	slug        string
}

var featuredServices = []featuredService{
	{"AI Integration for Business", "Automation pilots, copilots, and AI governance tailored to regulated industries.", "servicios"},
	{"Web Development Services", "SEO-optimized landing pages, content hubs, and high-performing e-commerce experiences.", "servicios"},
	{"Custom Software Development", "Workflow automation, API orchestration, and data platforms that scale with operations.", "servicios"},
	{"Business Data Analysis", "Dashboards, predictive insights, and KPI monitoring for product and revenue teams.", "portafolio"},
	{"Automation & AI Chatbots", "Conversational experiences, multilingual support desks, and back-office workflow automation.", "clientes"},
}

// pageCopy is the seo.<page> section of a dictionary.
type pageCopy struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// loadPageCopy decodes seo.<page>. Fields that do not resolve fall back to
// their key, as T does.
func loadPageCopy(c output.Catalog, lang domain.Language, page SEOPage) pageCopy {
	section := "seo." + string(page)
	var pc pageCopy
	if err := c.Bind(lang, section, &pc); err != nil {
		log.Printf("⚠️ seo: %v", err)
	}
	if pc.Title == "" {
		pc.Title = section + ".title"
	}
	if pc.Description == "" {
		pc.Description = section + ".description"
	}
	return pc
}

// SEOMetadata builds the head metadata for page at path. A Spanish path
// overrides lang; unknown paths collapse to the home page of their language.
func SEOMetadata(c output.Catalog, siteURL, path string, page SEOPage, lang domain.Language) entities.SEOMetadata {
	siteURL = strings.TrimRight(siteURL, "/")
	normalized := sitepath.Normalize(path)

	current := lang
	if !current.Valid() {
		current = domain.DefaultLanguage
	}
	if sitepath.HasSpanishPrefix(normalized) {
		current = domain.ES
	}

	englishHref := siteURL + sitepath.ToEnglish(normalized)
	spanishHref := siteURL + sitepath.ToSpanish(normalized)

	robots := robotsIndex
	ogType := "website"
	if page == SEOPageNotFound {
		robots = robotsNoIndex
		ogType = "article"
	}

	structured := []map[string]any{
		organizationSchema(siteURL),
		websiteSchema(siteURL, current),
	}
	if page == SEOPageHome {
		structured = append(structured,
			serviceListSchema(siteURL),
			breadcrumbSchema(c, siteURL, current),
		)
	}
	pc := loadPageCopy(c, current, page)

	return entities.SEOMetadata{
		Title:       pc.Title,
		Description: pc.Description,
		Canonical:   siteURL + normalized,
		Lang:        string(current),
		Robots:      robots,
		OGImage:     siteURL + ogImagePath,
		OGType:      ogType,
		Locale:      current.OpenGraphLocale(),
		Alternates: []entities.Alternate{
			{Href: englishHref, HrefLang: string(domain.EN)},
			{Href: spanishHref, HrefLang: string(domain.ES)},
			{Href: englishHref, HrefLang: "x-default"},
		},
		StructuredData: structured,
	}
}

func organizationSchema(siteURL string) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     organizationName,
		"url":      siteURL,
		"logo":     siteURL + ogImagePath,
		"sameAs":   organizationProfiles,
		"contactPoint": []map[string]any{{
			"@type":             "ContactPoint",
			"email":             "contact@elarisdigitalsolutions.com",
			"telephone":         "+51-987-450-340",
			"contactType":       "sales",
			"areaServed":        "Worldwide",
			"availableLanguage": []string{"English", "Spanish"},
		}},
	}
}

func websiteSchema(siteURL string, lang domain.Language) map[string]any {
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       organizationName,
		"url":        siteURL,
		"inLanguage": lang.LocaleCode(),
		"potentialAction": map[string]any{
			"@type":  "ContactAction",
			"target": siteURL + "/contacto",
		},
	}
}

func serviceListSchema(siteURL string) map[string]any {
	items := make([]map[string]any, len(featuredServices))
	for i, svc := range featuredServices {
		items[i] = map[string]any{
			"@type":       "Service",
			"position":    i + 1,
			"name":        svc.name,
			"description": svc.description,
			"provider": map[string]any{
				"@type": "Organization",
				"name":  organizationName,
			},
			"areaServed": "Worldwide",
			"url":        siteURL + "/" + svc.slug,
		}
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            organizationName + " Services",
		"itemListElement": items,
	}
}

// breadcrumbSchema pairs the translated breadcrumb names with the home page
// and each section, in the language's own paths.
func breadcrumbSchema(t output.Translator, siteURL string, lang domain.Language) map[string]any {
	names := t.TArray(lang, "seo.breadcrumbs")
	paths := []string{"/"}
	for _, slug := range sitepath.SectionSlugs {
		paths = append(paths, "/"+slug)
	}

	items := make([]map[string]any, 0, len(paths))
	for i, p := range paths {
		if i >= len(names) {
			break
		}
		if lang == domain.ES {
			p = sitepath.ToSpanish(p)
		}
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     names[i],
			"item":     siteURL + p,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
