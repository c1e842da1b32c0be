package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"vehicle-intake/config"
)

// GCSStore uploads objects to a Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, cfg *config.Config) (*GCSStore, error) {
	opts := []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
	if cfg.StorageURL != "" {
		// Emulator / private endpoint override
		opts = append(opts, option.WithEndpoint(cfg.StorageURL))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &GCSStore{client: client, bucket: cfg.StorageBucket}, nil
}

func (s *GCSStore) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
