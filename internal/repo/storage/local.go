package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PublicPrefix is the URL prefix local uploads are served under.
const PublicPrefix = "/uploads"

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.root, clean)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write %s: %w", clean, err)
	}
	return path.Join(PublicPrefix, clean), nil
}

func (s *LocalStorage) Delete(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(publicPath, PublicPrefix+"/") {
		return fmt.Errorf("path %q is outside %s", publicPath, PublicPrefix)
	}
	clean, err := cleanName(strings.TrimPrefix(publicPath, PublicPrefix+"/"))
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", clean, err)
	}
	return nil
}

// cleanName accepts only a bare file name.
func cleanName(name string) (string, error) {
	base := filepath.Base(name)
	if name == "" || base != name || base == "." || base == ".." {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return base, nil
}
