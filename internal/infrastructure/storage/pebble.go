package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cockroachdb/pebble"

	"elaris/internal/domain"
	"elaris/internal/ports/output"
)

var _ output.PreferenceStore = (*PebbleStore)(nil)

// PebbleStore persists preferences in a pebble key-value directory.
type PebbleStore struct {
	db *pebble.DB
}

// OpenPebbleStore opens (or creates) the pebble database at dir.
func OpenPebbleStore(dir string) (*PebbleStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pebble dir: %w", err)
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble %s: %w", dir, err)
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) Load(_ context.Context, key string) (string, error) {
	value, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	defer closer.Close()
	// value is only valid until closer.Close.
	return string(value), nil
}

func (s *PebbleStore) Save(_ context.Context, key, value string) error {
	if err := s.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}
