package storage

import (
	"context"
	"io"

	"vehicle-intake/config"
)

// ObjectStore writes attachment bytes under a derived key.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
}

// New selects the storage backend from configuration.
// Production (USE_GCS=true) uses Google Cloud Storage; development
// falls back to the local filesystem.
func New(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
	if cfg.UseGCS {
		return NewGCSStore(ctx, cfg)
	}
	return NewLocalStore(cfg.UploadDir)
}
