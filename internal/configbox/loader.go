package configbox

import (
	"context"
	"fmt"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/pipekit/internal/logger"
)

// DefaultLoaderCacheSize is the default number of parsed files kept in memory.
const DefaultLoaderCacheSize = 64

// loaderCacheEntry pairs a parsed box with the file modification time it was
// parsed at, so stale entries can be detected without re-reading the file.
type loaderCacheEntry struct {
	box     *Box
	modTime time.Time
}

// Loader loads YAML files into boxes and caches the parsed results.
// Pipelines tend to re-read the same handful of configuration files on
// every stage, so parsed boxes are kept in an LRU keyed by path.
type Loader struct {
	cache *lru.Cache[string, loaderCacheEntry]
}

// NewLoader creates a Loader with the given cache capacity.
// A non-positive capacity falls back to DefaultLoaderCacheSize.
func NewLoader(cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultLoaderCacheSize
	}

	cache, err := lru.New[string, loaderCacheEntry](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loader cache: %w", err)
	}

	return &Loader{cache: cache}, nil
}

// Load returns the box for the YAML file at path, reusing the cached parse
// if the file has not been modified since it was last read.
func (l *Loader) Load(ctx context.Context, path string) (*Box, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat YAML file: %w", err)
	}

	if entry, ok := l.cache.Get(path); ok && entry.modTime.Equal(stat.ModTime()) {
		logger.Debugf(ctx, "YAML file served from cache: %s", path)

		return entry.box, nil
	}

	box, err := LoadYAML(ctx, path)
	if err != nil {
		return nil, err
	}

	l.cache.Add(path, loaderCacheEntry{box: box, modTime: stat.ModTime()})

	return box, nil
}

// Invalidate drops the cached entry for path, if present.
func (l *Loader) Invalidate(path string) {
	l.cache.Remove(path)
}

// CacheLen returns the number of cached entries.
func (l *Loader) CacheLen() int {
	return l.cache.Len()
}
