package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	_ FileStorage = (*LocalStorage)(nil)
	_ FileStorage = (*S3Storage)(nil)
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	ctx := context.Background()
	p, err := store.Save(ctx, "a1b2.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a1b2.jpg", p)

	data, err := os.ReadFile(filepath.Join(root, "a1b2.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, store.Delete(ctx, p))
	_, err = os.Stat(filepath.Join(root, "a1b2.jpg"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// already gone
	assert.NoError(t, store.Delete(ctx, p))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "../escape.png", []byte("x"), "image/png")
	assert.Error(t, err)
	_, err = store.Save(ctx, "", []byte("x"), "image/png")
	assert.Error(t, err)

	assert.Error(t, store.Delete(ctx, "/uploads/../../etc/passwd"))
	assert.Error(t, store.Delete(ctx, "/static/a.png"))
}

func TestLocalStorage_DeleteSurfacesOtherErrors(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	// a non-empty directory cannot be removed with os.Remove
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.png", "child"), 0o755))
	assert.Error(t, store.Delete(context.Background(), "/uploads/dir.png"))
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockObjectStore) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockObjectStore) KeyFromURL(rawURL string) (string, error) {
	args := m.Called(rawURL)
	return args.String(0), args.Error(1)
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()
	client := new(mockObjectStore)
	store := NewS3Storage(client, "media")

	url := "https://bucket.s3.us-east-1.amazonaws.com/media/x.mp4"
	client.On("UploadFile", ctx, "media/x.mp4", []byte("v"), "video/mp4").Return(url, nil)
	client.On("KeyFromURL", url).Return("media/x.mp4", nil)
	client.On("DeleteFile", ctx, "media/x.mp4").Return(nil)

	got, err := store.Save(ctx, "x.mp4", []byte("v"), "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, url, got)
	assert.NoError(t, store.Delete(ctx, got))

	_, err = store.Save(ctx, "../x.mp4", []byte("v"), "video/mp4")
	assert.Error(t, err)

	client.AssertExpectations(t)
}
