// Package storage persists uploaded binary objects.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store writes an object under a key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskStore keeps objects under a base directory served at baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore builds a disk-backed store rooted at dir.
func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: baseURL}
}

// Put implements Store. The same key always maps to the same path, so
// re-uploads overwrite in place.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	name := key + extByContentType[contentType]
	path := filepath.Join(s.dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write object %s: %w", name, err)
	}
	return s.baseURL + "/" + name, nil
}
