package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dividend_backend/internal/feature/company/usecase"
)

// LocalIconStore writes icons into a directory served as static files.
type LocalIconStore struct {
	dir     string
	baseURL string
}

var _ usecase.IconStore = (*LocalIconStore)(nil)

// NewLocalIconStore returns a store writing into dir and referencing files under baseURL.
func NewLocalIconStore(dir, baseURL string) *LocalIconStore {
	return &LocalIconStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir is the directory icons are written to.
func (s *LocalIconStore) Dir() string { return s.dir }

// BaseURL is the URL prefix icons are served under.
func (s *LocalIconStore) BaseURL() string { return s.baseURL }

// Save writes data as name, replacing any previous file, and returns its URL.
func (s *LocalIconStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create icon dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write icon: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete removes name. A missing file is not an error.
func (s *LocalIconStore) Delete(_ context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove icon: %w", err)
	}
	return nil
}

// cleanName rejects names that would escape the icon directory.
func cleanName(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("storage: invalid icon name %q", name)
	}
	return base, nil
}
