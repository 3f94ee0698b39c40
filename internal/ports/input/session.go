package input

import (
	"context"

	"elaris/internal/domain"
)

type LanguageSessionUseCase interface {
	Language() domain.Language
	SetLanguage(ctx context.Context, lang domain.Language) error
	SyncPath(ctx context.Context, path string) error
	T(key string, params map[string]any) string
	TArray(key string) []string
	Subscribe(fn func(domain.Language)) (unsubscribe func())
}
