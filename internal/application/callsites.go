package application

// Kind is the shape a call site expects a key to resolve to.
type Kind string

const (
	KindScalar Kind = "string"
	KindArray  Kind = "sequence"
)

// CallSite is one key the site requests, with the shape it expects and the
// placeholders it passes.
type CallSite struct {
	Key          string
	Kind         Kind
	Placeholders []string
}

// ProjectSlugs are the portfolio projects shown in the carousel, in order.
var ProjectSlugs = []string{"nuestroBarrio", "karMa", "papeleraLatinoamericana", "diegoJoyero", "salcedoJewels"}

// ProcessSteps are the steps of the process timeline, in order.
var ProcessSteps = []string{"analysis", "design", "development", "testing", "deployment", "support"}

// SEOPages are the pages that carry their own metadata copy.
var SEOPages = []SEOPage{SEOPageHome, SEOPageNotFound}

// CallSites enumerates every key the site sections request.
func CallSites() []CallSite {
	sites := []CallSite{
		{Key: "navbar.logoAlt", Kind: KindScalar},
		{Key: "navbar.links", Kind: KindArray},
		{Key: "navbar.languageToggle", Kind: KindScalar},
		{Key: "common.buttons.viewProject", Kind: KindScalar},
		{Key: "common.buttons.contactUs", Kind: KindScalar},
		{Key: "notFound.title", Kind: KindScalar},
		{Key: "notFound.description", Kind: KindScalar},
		{Key: "notFound.cta", Kind: KindScalar},
		{Key: "portfolio.headingNormal", Kind: KindScalar},
		{Key: "portfolio.headingAccent", Kind: KindScalar},
		{Key: "portfolio.description", Kind: KindScalar},
		{Key: "process.headingNormal", Kind: KindScalar},
		{Key: "process.headingAccent", Kind: KindScalar},
		{Key: "process.description", Kind: KindScalar},
		{Key: "footer.description", Kind: KindScalar},
		{Key: "footer.sections.services.title", Kind: KindScalar},
		{Key: "footer.sections.services.items", Kind: KindArray},
		{Key: "footer.sections.navigation.title", Kind: KindScalar},
		{Key: "footer.sections.navigation.items", Kind: KindArray},
		{Key: "footer.sections.contact.title", Kind: KindScalar},
		{Key: "footer.sections.contact.email", Kind: KindScalar},
		{Key: "footer.sections.contact.phone", Kind: KindScalar},
		{Key: "footer.sections.contact.instagram", Kind: KindScalar},
		{Key: "footer.sections.contact.location", Kind: KindScalar},
		{Key: "footer.bottom.rights", Kind: KindScalar, Placeholders: []string{"year"}},
		{Key: "footer.bottom.tagline", Kind: KindScalar},
		{Key: "seo.breadcrumbs", Kind: KindArray},
	}
	for _, slug := range ProjectSlugs {
		for _, field := range []string{"title", "description", "category", "metrics"} {
			sites = append(sites, CallSite{Key: "portfolio.projects." + slug + "." + field, Kind: KindScalar})
		}
	}
	for _, step := range ProcessSteps {
		for _, field := range []string{"title", "heading", "description"} {
			sites = append(sites, CallSite{Key: "process.steps." + step + "." + field, Kind: KindScalar})
		}
	}
	for _, page := range SEOPages {
		sites = append(sites,
			CallSite{Key: "seo." + string(page) + ".title", Kind: KindScalar},
			CallSite{Key: "seo." + string(page) + ".description", Kind: KindScalar},
		)
	}
	return sites
}
