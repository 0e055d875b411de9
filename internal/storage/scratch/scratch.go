// Package scratch implements port.ScratchStore on the local filesystem.
package scratch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes transient upload files under a single directory. Distinct
// filenames never collide; two concurrent uploads of the same original
// filename can race, which is an accepted limitation of the upload contract.
type Store struct {
	dir string
}

// New creates the scratch directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes body to a file named after the upload's original base name and
// returns its path.
func (s *Store) Save(_ context.Context, name string, body io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing scratch file: %w", err)
	}
	return path, nil
}

// Read returns the stored bytes for name.
func (s *Store) Read(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
}

// Remove deletes the stored file for name.
func (s *Store) Remove(_ context.Context, name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// Ping verifies the scratch directory is writable by creating and removing
// a probe file.
func (s *Store) Ping(_ context.Context) error {
	f, err := os.CreateTemp(s.dir, ".ready-*")
	if err != nil {
		return fmt.Errorf("scratch dir not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
