package storage

import (
	"context"
	"path"
)

type objectStore interface {
	UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, error)
}

// S3Storage keeps media in a bucket under a common key prefix and returns object URLs.
type S3Storage struct {
	client objectStore
	prefix string
}

func NewS3Storage(client objectStore, prefix string) *S3Storage {
	return &S3Storage{client: client, prefix: prefix}
}

func (s *S3Storage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return s.client.UploadFile(ctx, path.Join(s.prefix, clean), data, contentType)
}

// Delete relies on S3 treating deletes of absent keys as success.
func (s *S3Storage) Delete(ctx context.Context, objectURL string) error {
	key, err := s.client.KeyFromURL(objectURL)
	if err != nil {
		return err
	}
	return s.client.DeleteFile(ctx, key)
}
