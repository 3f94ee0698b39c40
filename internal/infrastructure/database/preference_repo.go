package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"elaris/internal/domain"
	"elaris/internal/domain/entities"
	"elaris/internal/ports/output"
)

var _ output.PreferenceStore = (*PreferenceRepository)(nil)

const (
	selectPreference = `SELECT key, value, updated_at FROM preferences WHERE key = $1`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// PreferenceRepository implements output.PreferenceStore using pgx.
type PreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// Find returns the full preference row for key.
func (r *PreferenceRepository) Find(ctx context.Context, key string) (*entities.Preference, error) {
	var row preferenceRow
	err := r.pool.QueryRow(ctx, selectPreference, key).Scan(&row.Key, &row.Value, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get preference by key: %w", err)
	}
	p := preferenceToDomain(row)
	return &p, nil
}

func (r *PreferenceRepository) Load(ctx context.Context, key string) (string, error) {
	p, err := r.Find(ctx, key)
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, key, value string) error {
	if _, err := r.pool.Exec(ctx, upsertPreference, key, value); err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
