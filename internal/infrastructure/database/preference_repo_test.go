package database

import (
	"context"
	"errors"
	"os"
	"testing"

	"elaris/internal/domain"
)

// Runs against a real PostgreSQL only when TEST_DATABASE_URL is set.
func TestPreferenceRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	if err := RunMigrations(dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	repo := NewPreferenceRepository(pool)
	key := "test-" + t.Name()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM preferences WHERE key = $1`, key)
	})

	if _, err := repo.Load(ctx, key); !errors.Is(err, domain.ErrPreferenceNotFound) {
		t.Fatalf("load before save err = %v, want ErrPreferenceNotFound", err)
	}
	if err := repo.Save(ctx, key, "es"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, key, "en"); err != nil {
		t.Fatalf("save again: %v", err)
	}
	p, err := repo.Find(ctx, key)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Value != "en" {
		t.Fatalf("value = %q, want en", p.Value)
	}
	if p.UpdatedAt.IsZero() {
		t.Fatal("updated_at should be set")
	}
}
