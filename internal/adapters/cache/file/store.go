// Package file persists the last known-good catalog payload as a single
// flat file under the user config directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
)

const (
	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	tempFilePattern = ".apps-cache-*.json.tmp"
)

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.CatalogCache = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Save overwrites the stored record. The write goes through a temp file and
// a rename so a concurrent Read never observes a partial payload.
func (s *Store) Save(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(payload); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	cleanup = false
	return nil
}

// Read returns the last saved payload verbatim. A missing, empty, or
// non-JSON file reads as domain.ErrCacheMiss; there is no expiry.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		// Unreadable is indistinguishable from never-written by contract.
		return nil, domain.ErrCacheMiss
	}

	if len(data) == 0 || !json.Valid(data) {
		return nil, domain.ErrCacheMiss
	}

	return data, nil
}
