package entities

// Alternate is a hreflang alternate link.
type Alternate struct {
	Href     string `json:"href"`
	HrefLang string `json:"hrefLang"`
}

// SEOMetadata is everything a page head needs for search engines and link previews.
type SEOMetadata struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Canonical      string           `json:"canonical"`
	Lang           string           `json:"lang"`
	Robots         string           `json:"robots"`
	OGImage        string           `json:"ogImage"`
	OGType         string           `json:"ogType"`
	Locale         string           `json:"locale"`
	Alternates     []Alternate      `json:"alternates"`
	StructuredData []map[string]any `json:"structuredData"`
}
