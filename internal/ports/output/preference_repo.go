package output

import "context"

// PreferenceStore persists small string preferences such as the chosen language.
type PreferenceStore interface {
	// Load returns domain.ErrPreferenceNotFound when nothing is stored under key.
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}
