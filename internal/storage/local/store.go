package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtroode/files-manager/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ model.Storage = (*Store)(nil)

// Store keeps content as flat files under a root directory. Locations are
// absolute paths; every operation refuses paths outside the root.
type Store struct {
	root string
}

// NewStore creates the root directory if needed.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute storage directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) resolve(keyOrLocation string) (string, error) {
	if keyOrLocation == "" {
		return "", fmt.Errorf("empty storage key")
	}

	p := keyOrLocation
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.root, p)
	}
	p = filepath.Clean(p)

	if !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes storage root: %s", keyOrLocation)
	}

	return p, nil
}

// Upload writes reader to key through a temporary file and an atomic rename,
// so readers never observe a partial blob.
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader) (string, error) {
	p, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return "", fmt.Errorf("failed to move content into place: %w", err)
	}

	return p, nil
}

// Download opens the blob at location. A missing blob is model.ErrNotFound.
func (s *Store) Download(_ context.Context, location string) (io.ReadCloser, error) {
	p, err := s.resolve(location)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open content: %w", err)
	}

	return f, nil
}

// Delete removes the blob at location; a missing blob is not an error.
func (s *Store) Delete(_ context.Context, location string) error {
	p, err := s.resolve(location)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	return nil
}

// Exists reports whether a regular file is stored at location.
func (s *Store) Exists(_ context.Context, location string) (bool, error) {
	p, err := s.resolve(location)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat content: %w", err)
	}

	return info.Mode().IsRegular(), nil
}
