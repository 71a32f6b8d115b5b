// Package store maps entry names to ciphertext files under a store
// directory and hands their contents to a pgp.Crypter.
//
// Each entry is one file, <dir>/<name>.gpg. Names may contain '/' to nest
// entries in subdirectories, but may never resolve outside the store.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
	"github.com/PolarWolf314/kauri/internal/pgp"
)

// Extension is appended to every entry name on disk.
const Extension = ".gpg"

// Store is a directory of encrypted entries.
type Store struct {
	dir     string
	crypter pgp.Crypter
}

// New returns a Store rooted at dir. The directory is not created.
func New(dir string, crypter pgp.Crypter) *Store {
	return &Store{dir: filepath.Clean(dir), crypter: crypter}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file that holds name.
//
// Returns ErrInvalidName for empty or absolute names, and for names that
// would resolve outside the store directory.
func (s *Store) Path(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is empty", kerrors.ErrInvalidName)
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s names a directory", kerrors.ErrInvalidName, name)
	}

	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || filepath.VolumeName(cleaned) != "" {
		return "", fmt.Errorf("%w: absolute names are not allowed: %s", kerrors.ErrInvalidName, name)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s escapes the store", kerrors.ErrInvalidName, name)
	}
	if strings.HasPrefix(filepath.Base(cleaned), ".") {
		return "", fmt.Errorf("%w: names may not start with '.': %s", kerrors.ErrInvalidName, name)
	}

	return filepath.Join(s.dir, cleaned+Extension), nil
}

// Exists reports whether an entry called name is present.
func (s *Store) Exists(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Write encrypts plaintext for keyID and stores it as name, replacing any
// existing entry. Nothing is written if encryption fails.
func (s *Store) Write(ctx context.Context, name string, plaintext []byte, keyID string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	ciphertext, err := s.crypter.Encrypt(ctx, plaintext, keyID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	if err := writeFileAtomic(path, ciphertext, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return path, nil
}

// Read decrypts and returns the entry called name.
//
// Returns ErrSecretNotFound if there is no such entry.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	ciphertext, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrSecretNotFound, name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return s.crypter.Decrypt(ctx, ciphertext)
}

// List returns all entry names in sorted order, using '/' between
// path segments. Dot-files and dot-directories are skipped.
func (s *Store) List() ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == s.dir && errors.Is(walkErr, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return walkErr
		}
		if path != s.dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}

		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(strings.TrimSuffix(rel, Extension)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list store: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// writeFileAtomic writes data to a temporary file beside path and renames
// it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
