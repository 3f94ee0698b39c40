package domain

import "errors"

// Domain errors.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrPreferenceNotFound  = errors.New("preference not found")
	ErrKeyNotFound         = errors.New("translation key not found")
	ErrDictionaryMissing   = errors.New("dictionary missing for language")
)
