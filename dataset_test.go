package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rl404/verniy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "base-users-fantasy.json", datasetFileName(ModeFantasy, ComparisonTwoUser))
	assert.Equal(t, "base-users-isekai.json", datasetFileName(ModeIsekai, ComparisonTwoUser))
	assert.Equal(t, "base-users-fantasy-4user.json", datasetFileName(ModeFantasy, ComparisonFourUser))
	assert.Equal(t, "base-users-isekai-4user.json", datasetFileName(ModeIsekai, ComparisonFourUser))
}

func TestDatasetStore_SaveLoad(t *testing.T) {
	t.Parallel()
	store := NewDatasetStore(filepath.Join(t.TempDir(), "data"))

	ds := &Dataset{
		BaseUsers: map[string]UserProfile{
			"refa": {
				Username:    "refa",
				Platform:    PlatformAnilist,
				AnimeList:   []AnimeRecord{ratedAnime(1, "Alpha", 8)},
				ScoreFormat: verniy.ScoreFormatPoint10,
			},
		},
		Metadata: DatasetMetadata{
			DownloadedAt: time.Now().UTC(),
			FilterType:   ModeFantasy,
			TotalAnime:   1,
			TotalUsers:   1,
		},
	}

	require.NoError(t, store.Save(t.Context(), ModeFantasy, ComparisonTwoUser, ds))

	loaded, err := store.Load(ModeFantasy, ComparisonTwoUser)
	require.NoError(t, err)
	assert.Equal(t, ModeFantasy, loaded.Metadata.FilterType)
	assert.Len(t, loaded.BaseUsers, 1)
	assert.Equal(t, "Alpha", loaded.BaseUsers["refa"].AnimeList[0].Title)
}

func TestDatasetStore_LoadMissing(t *testing.T) {
	t.Parallel()
	store := NewDatasetStore(t.TempDir())

	_, err := store.Load(ModeIsekai, ComparisonFourUser)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDatasetStore_ReferenceListsFor(t *testing.T) {
	t.Parallel()
	store := NewDatasetStore(t.TempDir())

	ds := &Dataset{
		BaseUsers: map[string]UserProfile{
			"refa": {
				Username: "RefA",
				// POINT_100 scores must come out translated.
				AnimeList:   []AnimeRecord{ratedAnime(1, "Alpha", 85)},
				ScoreFormat: verniy.ScoreFormatPoint100,
			},
		},
		Metadata: DatasetMetadata{DownloadedAt: time.Now(), FilterType: ModeFantasy},
	}
	require.NoError(t, store.Save(t.Context(), ModeFantasy, ComparisonTwoUser, ds))

	refs := []ReferenceUser{
		{Name: "RefA", Platform: "anilist", Username: "RefA"}, // case differs from dataset key
		{Name: "Ghost", Platform: "anilist", Username: "ghost"},
	}

	lists, err := store.ReferenceListsFor(t.Context(), refs, ModeFantasy, ComparisonTwoUser)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	assert.Equal(t, "RefA", lists[0].Name)
	require.Len(t, lists[0].Records, 1)
	assert.Equal(t, 8.5, *lists[0].Records[0].Score)

	// Missing reference yields an empty list, not an error.
	assert.Equal(t, "Ghost", lists[1].Name)
	assert.Empty(t, lists[1].Records)
}

func TestDatasetStore_Status(t *testing.T) {
	t.Parallel()
	store := NewDatasetStore(t.TempDir())

	missing := store.Status(ModeFantasy, ComparisonTwoUser)
	assert.False(t, missing.Exists)

	ds := &Dataset{
		BaseUsers: map[string]UserProfile{
			"refa": {Username: "refa", AnimeList: []AnimeRecord{ratedAnime(1, "A", 8), ratedAnime(2, "B", 6)}},
			"refb": {Username: "refb", AnimeList: []AnimeRecord{ratedAnime(1, "A", 7)}},
		},
		Metadata: DatasetMetadata{
			DownloadedAt: time.Now().Add(-2 * time.Hour),
			FilterType:   ModeFantasy,
			TotalAnime:   3,
			TotalUsers:   2,
		},
	}
	require.NoError(t, store.Save(t.Context(), ModeFantasy, ComparisonTwoUser, ds))

	status := store.Status(ModeFantasy, ComparisonTwoUser)
	assert.True(t, status.Exists)
	assert.Equal(t, 2, status.TotalUsers)
	assert.Equal(t, 3, status.TotalAnime)
	assert.Equal(t, 2, status.UserCounts["refa"])
	assert.Equal(t, 1, status.UserCounts["refb"])
	assert.InDelta(t, 2, status.AgeHours, 0.1)
}
