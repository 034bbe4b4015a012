package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// CachedIndex decorates a PackageIndex with an on-disk release list cache.
// Cache failures are logged and never fail a lookup.
type CachedIndex struct {
	next    ports.PackageIndex
	logger  ports.Logger
	dir     string
	index   string
	ttl     time.Duration
	refresh bool
	now     func() time.Time
}

// NewCachedIndex wraps next. index identifies the upstream index and is part of every cache key.
// With refresh set, cached entries are ignored but still rewritten.
func NewCachedIndex(
	next ports.PackageIndex,
	logger ports.Logger,
	dir, index string,
	ttl time.Duration,
	refresh bool,
) *CachedIndex {
	return &CachedIndex{
		next:    next,
		logger:  logger,
		dir:     filepath.Clean(dir),
		index:   index,
		ttl:     ttl,
		refresh: refresh,
		now:     time.Now,
	}
}

// Releases returns the cached release list of name if it is fresh and asks the wrapped index otherwise.
func (c *CachedIndex) Releases(ctx context.Context, name string) ([]string, error) {
	path := c.cachePath(name)

	if !c.refresh {
		releases, err := c.load(path)
		if err == nil {
			c.logger.Debug(fmt.Sprintf("using cached releases of %s", name))
			return releases, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug(fmt.Sprintf("ignoring release cache of %s: %v", name, err))
		}
	}

	releases, err := c.next.Releases(ctx, name)
	if err != nil {
		return nil, err
	}

	// Unknown projects are not cached so a first upload is seen immediately.
	if len(releases) > 0 {
		if err := c.save(path, name, releases); err != nil {
			c.logger.Warn(fmt.Sprintf("failed to cache releases of %s: %v", name, err))
		}
	}

	return releases, nil
}

// cacheKey hashes the index identity and project name into a file name.
func cacheKey(index, name string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(index+"\x00"+name))
}

func (c *CachedIndex) cachePath(name string) string {
	return filepath.Join(c.dir, cacheKey(c.index, name)+".json")
}

func (c *CachedIndex) load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is a hashed name below the cache directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrCacheReadFailed, err)
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Join(domain.ErrCacheReadFailed, err)
	}

	if entry.Index != c.index {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, "cache entry belongs to another index"), "path", path)
	}

	if age := c.now().Sub(entry.Timestamp); age > c.ttl || age < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, "cache entry expired"), "path", path)
	}

	return entry.Releases, nil
}

func (c *CachedIndex) save(path, name string, releases []string) error {
	entry := cacheEntry{
		Index:     c.index,
		Name:      name,
		Releases:  releases,
		Timestamp: c.now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, err)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "releases-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
