package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const classificationCacheFile = "classifications.json"

// classificationCacheEntry is one cached classification with timestamp.
type classificationCacheEntry struct {
	Classification Classification `json:"classification"`
	CachedAt       time.Time      `json:"cached_at"`
}

// ClassificationCache persists anime classifications across runs so repeat
// analyses of MAL users skip the AniList/Jikan round trips. Genre and theme
// assignments change rarely, so entries live long.
type ClassificationCache struct {
	entries  map[string]classificationCacheEntry
	mu       sync.RWMutex
	filePath string
	dirty    bool
	maxAge   time.Duration
}

// NewClassificationCache creates a cache under dataDir and loads existing data.
func NewClassificationCache(dataDir string, maxAge time.Duration) *ClassificationCache {
	cache := &ClassificationCache{
		entries:  make(map[string]classificationCacheEntry),
		filePath: filepath.Join(dataDir, classificationCacheFile),
		maxAge:   maxAge,
	}

	if err := cache.load(); err != nil && !os.IsNotExist(err) {
		LogWarn(context.Background(), "Failed to load classification cache: %v (starting fresh)", err)
	}

	return cache
}

// Get retrieves a cached classification by MAL ID. Expired entries are a miss.
func (c *ClassificationCache) Get(malID int) (Classification, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[cacheKey(malID)]
	if !exists {
		return Classification{}, false
	}
	if c.maxAge > 0 && time.Since(entry.CachedAt) > c.maxAge {
		return Classification{}, false
	}

	return entry.Classification, true
}

// Set stores a classification.
func (c *ClassificationCache) Set(malID int, cls Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(malID)] = classificationCacheEntry{
		Classification: cls,
		CachedAt:       time.Now(),
	}
	c.dirty = true
}

// Save persists the cache to disk if dirty.
func (c *ClassificationCache) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), DatasetDirPerms); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	if err := os.WriteFile(c.filePath, data, DatasetFilePerms); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	c.dirty = false
	LogDebug(ctx, "[Classification Cache] Saved %d entries to %s", len(c.entries), c.filePath)
	return nil
}

func (c *ClassificationCache) load() error {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &c.entries)
}

// Size returns the number of cached entries.
func (c *ClassificationCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cacheKey(malID int) string {
	return fmt.Sprintf("anime_%d", malID)
}
