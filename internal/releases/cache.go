package releases

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "release-tags.json"
	// DefaultCacheMaxAge is the default maximum age for the tag cache.
	DefaultCacheMaxAge = 24 * time.Hour
)

// TagCache holds cached release tag listings.
type TagCache struct {
	Versions  []string  `json:"versions"`
	CheckedAt time.Time `json:"checked_at"`
}

// LoadCache reads the tag cache from cacheDir.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(cacheDir string) (*TagCache, error) {
	path := filepath.Join(cacheDir, cacheFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tag cache: %w", err)
	}

	var cache TagCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing tag cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the tag cache to cacheDir.
func SaveCache(cacheDir string, cache *TagCache) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tag cache: %w", err)
	}

	path := filepath.Join(cacheDir, cacheFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing tag cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is older than maxAge or nil.
func IsCacheStale(cache *TagCache, maxAge time.Duration) bool {
	if cache == nil {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}
