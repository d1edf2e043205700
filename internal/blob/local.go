package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes uploads under a directory on the local filesystem and
// returns relative URLs, expecting the transport layer (or a reverse
// proxy) to serve the directory.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: baseURL}
}

func (l *LocalStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	full := filepath.Join(l.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("blob: unable to create upload directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: unable to write %s: %w", path, err)
	}
	return l.baseURL + "/" + path, nil
}
