package blob

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
)

// GCSStore writes capture objects to a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

// NewGCSStore dials GCS with application default credentials.
func NewGCSStore(ctx context.Context, bucket string, logger *zap.Logger) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, logger: logger}, nil
}

// Put uploads data under key. Content type and encoding are recorded as
// object metadata so downstream readers can decompress transparently.
func (s *GCSStore) Put(ctx context.Context, key, contentType, contentEncoding string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.ContentEncoding = contentEncoding
	w.ChunkSize = 0 // buffers fit in one request

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing object %s: %w", key, err)
	}
	s.logger.Debug("object stored",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
