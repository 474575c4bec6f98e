package storage

import "context"

// FileStorage persists uploaded media bytes and returns the public path they are served from.
type FileStorage interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// Delete removes the file behind a path returned by Save. A missing file is not an error.
	Delete(ctx context.Context, path string) error
}
