package storage

import (
	"context"
	"fmt"

	"elaris/internal/infrastructure/database"
	"elaris/internal/ports/output"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPebble   = "pebble"
	BackendPostgres = "postgres"
)

// Backends lists every backend Open understands.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendPebble, BackendPostgres}
}

// Open returns the preference store for backend. path is the file or
// directory for file and pebble backends, dsn the PostgreSQL URL. The
// returned close func is never nil.
func Open(ctx context.Context, backend, path, dsn string) (output.PreferenceStore, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile:
		return NewFileStore(path), noop, nil
	case BackendPebble:
		s, err := OpenPebbleStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendPostgres:
		if err := database.RunMigrations(dsn); err != nil {
			return nil, noop, err
		}
		pool, err := database.NewPool(ctx, dsn)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		return database.NewPreferenceRepository(pool), func() error { pool.Close(); return nil }, nil
	default:
		return nil, noop, fmt.Errorf("unknown preference store %q", backend)
	}
}
