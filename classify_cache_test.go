package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClassificationCache(t *testing.T) {
	t.Parallel()

	cache := NewClassificationCache(t.TempDir(), ClassificationCacheMaxAge)
	assert.NotNil(t, cache)
	assert.Equal(t, 0, cache.Size())
}

func TestClassificationCache_SetGet(t *testing.T) {
	t.Parallel()
	cache := NewClassificationCache(t.TempDir(), ClassificationCacheMaxAge)

	cache.Set(123, Classification{HasFantasy: true, HasIsekai: true, IsekaiRank: intPtr(92), Title: "Mushoku Tensei"})

	got, found := cache.Get(123)
	assert.True(t, found)
	assert.True(t, got.HasFantasy)
	assert.True(t, got.HasIsekai)
	assert.Equal(t, 92, *got.IsekaiRank)
}

func TestClassificationCache_NotFound(t *testing.T) {
	t.Parallel()
	cache := NewClassificationCache(t.TempDir(), ClassificationCacheMaxAge)

	_, found := cache.Get(999)
	assert.False(t, found)
}

func TestClassificationCache_SaveLoad(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	cache := NewClassificationCache(tmpDir, ClassificationCacheMaxAge)
	cache.Set(123, Classification{HasFantasy: true})
	assert.NoError(t, cache.Save(t.Context()))

	reloaded := NewClassificationCache(tmpDir, ClassificationCacheMaxAge)
	assert.Equal(t, 1, reloaded.Size())

	got, found := reloaded.Get(123)
	assert.True(t, found)
	assert.True(t, got.HasFantasy)
}

func TestClassificationCache_ExpiredEntryIsMiss(t *testing.T) {
	t.Parallel()
	cache := NewClassificationCache(t.TempDir(), time.Nanosecond)

	cache.Set(123, Classification{HasFantasy: true})
	time.Sleep(time.Millisecond)

	_, found := cache.Get(123)
	assert.False(t, found)
}

func TestClassificationCache_SaveCleanCacheIsNoop(t *testing.T) {
	t.Parallel()
	cache := NewClassificationCache(t.TempDir(), ClassificationCacheMaxAge)

	assert.NoError(t, cache.Save(t.Context()))
	assert.Equal(t, 0, cache.Size())
}
