package storage

import (
	"context"
	"errors"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// Store writes byte payloads at logical paths and returns fetchable URLs.
// Uploading to an occupied path overwrites silently. The store does no
// content-type validation or size limiting; callers are trusted to supply
// appropriate files.
type Store interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

type gcsStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCSStore creates a Store backed by a Cloud Storage bucket.
func NewGCSStore(bucket *gcs.BucketHandle, bucketName string) Store {
	return &gcsStore{bucket: bucket, bucketName: bucketName}
}

// Upload writes data at path, marks the object publicly readable, and
// returns its public URL.
func (s *gcsStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	obj := s.bucket.Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object '%s': %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", path, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("failed to publish object '%s': %w", path, err)
	}

	return PublicURL(s.bucketName, path), nil
}

// Delete removes the object at path. Deleting a missing object is a no-op.
func (s *gcsStore) Delete(ctx context.Context, path string) error {
	err := s.bucket.Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object '%s': %w", path, err)
	}
	return nil
}

// PublicURL returns the canonical public URL for an object.
func PublicURL(bucket, path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}
