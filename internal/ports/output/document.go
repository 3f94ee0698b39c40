package output

// Document receives the document-level language attribute whenever the
// active language changes.
type Document interface {
	SetLang(lang string)
}
