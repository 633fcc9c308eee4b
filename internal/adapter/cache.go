package adapter

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/tally/internal/model"
)

// ReportCache remembers per-file reports keyed by the file's path,
// size, and modification time, so repeated runs (watch mode, the
// interactive view) skip files that have not changed.
type ReportCache struct {
	cache *lru.Cache[string, m.FileReport]
}

// NewReportCache creates a cache holding up to size entries.
func NewReportCache(size int) (*ReportCache, error) {
	cache, err := lru.New[string, m.FileReport](size)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}

	return &ReportCache{cache: cache}, nil
}

// Get returns the cached report for the file state, if present.
func (c *ReportCache) Get(path m.Path, info os.FileInfo, granular bool) (m.FileReport, bool) {
	return c.cache.Get(cacheKey(path, info, granular))
}

// Put stores a report under the file state it was computed from.
func (c *ReportCache) Put(path m.Path, info os.FileInfo, granular bool, report m.FileReport) {
	c.cache.Add(cacheKey(path, info, granular), report)
}

func cacheKey(path m.Path, info os.FileInfo, granular bool) string {
	return fmt.Sprintf("%s|%d|%d|%t", path, info.Size(), info.ModTime().UnixNano(), granular)
}
