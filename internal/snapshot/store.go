// Package snapshot persists the encoded registry at a fixed location.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"dimred/internal/config"
)

var ErrNotFound = errors.New("snapshot: not found")

// Store holds exactly one snapshot; Save replaces it atomically.
type Store interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
	Location() string
}

// Open selects the driver named by cfg.Snapshot.Driver.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Snapshot.Driver {
	case "", "file":
		return NewFileStore(cfg.SnapshotPath()), nil
	case "minio":
		return NewMinioStore(ctx, cfg.Snapshot.Minio)
	default:
		return nil, fmt.Errorf("snapshot: unsupported driver %q", cfg.Snapshot.Driver)
	}
}
