// Package cache persists the repository-to-project mapping as a flat JSON document.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/pinsync/internal/adapters/fsutil"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileCache implements ports.MappingCache using a JSON file on disk.
type FileCache struct {
	mu  sync.RWMutex
	now func() time.Time
}

// NewFileCache creates a new FileCache.
func NewFileCache() *FileCache {
	return &FileCache{now: time.Now}
}

// Load reads the mapping stored at path. It returns nil without error when
// the document does not exist.
func (c *FileCache) Load(path string) (domain.RegistryMapping, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	//nolint:gosec // Path comes from the loaded settings
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrCacheReadFailed, zerr.With(err, "path", path))
	}

	if len(data) == 0 {
		return nil, nil
	}

	var mapping domain.RegistryMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, errors.Join(domain.ErrCacheCorrupt, zerr.With(err, "path", path))
	}
	if mapping == nil {
		mapping = domain.RegistryMapping{}
	}
	return mapping, nil
}

// Store replaces the document at path with mapping. The write goes through a
// temporary file in the same directory so readers never see a partial document.
func (c *FileCache) Store(path string, mapping domain.RegistryMapping) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mapping == nil {
		mapping = domain.RegistryMapping{}
	}
	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCacheMarshalFailed, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "dir", dir))
	}

	if err := fsutil.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

// IsFresh reports whether the document at path exists, holds at least
// minSize bytes and was modified less than ttl ago.
func (c *FileCache) IsFresh(path string, ttl time.Duration, minSize int64) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Join(domain.ErrCacheReadFailed, zerr.With(err, "path", path))
	}

	if info.IsDir() || info.Size() < minSize {
		return false, nil
	}
	return c.now().Sub(info.ModTime()) < ttl, nil
}
