package main

import (
	"testing"

	"github.com/rl404/verniy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDownloader_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	cfg := testConfig(t.TempDir())

	mixed := func(username string) *UserProfile {
		fantasyOnly := fantasyAnime(1, "Alpha", 8)
		isekai := fantasyAnime(2, "Beta", 6)
		isekai.Themes = []string{"Isekai"}
		neither := ratedAnime(3, "Gamma", 7)
		return &UserProfile{
			Username:    username,
			ScoreFormat: verniy.ScoreFormatPoint10,
			AnimeList:   []AnimeRecord{fantasyOnly, isekai, neither},
		}
	}

	fetcher := NewMockListFetcher(ctrl)
	// Each distinct reference user is fetched exactly once even though it
	// appears in both the 2-user and 4-user lists.
	for _, username := range []string{"refa", "refb", "refc", "refd"} {
		fetcher.EXPECT().
			FetchUserProfile(gomock.Any(), username, gomock.Any(), gomock.Any()).
			Return(mixed(username), nil).
			Times(1)
	}

	store := NewDatasetStore(cfg.DataDir)
	downloader := NewDownloader(fetcher, store, cfg)

	require.NoError(t, downloader.Run(t.Context()))

	// Every mode/comparison combination produced a file.
	for _, mode := range []Mode{ModeFantasy, ModeIsekai} {
		for _, cm := range []ComparisonMode{ComparisonTwoUser, ComparisonFourUser} {
			ds, err := store.Load(mode, cm)
			require.NoError(t, err, "dataset %s/%s", mode, cm)
			assert.Equal(t, mode, ds.Metadata.FilterType)
		}
	}

	// Fantasy keeps 2 of 3 records, isekai 1 of 3.
	fantasy, err := store.Load(ModeFantasy, ComparisonTwoUser)
	require.NoError(t, err)
	assert.Len(t, fantasy.BaseUsers["refa"].AnimeList, 2)
	assert.Equal(t, 4, fantasy.Metadata.TotalAnime)

	isekai, err := store.Load(ModeIsekai, ComparisonFourUser)
	require.NoError(t, err)
	assert.Len(t, isekai.BaseUsers["refc"].AnimeList, 1)
}

func TestDownloader_FetchFailureAborts(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	cfg := testConfig(t.TempDir())

	fetcher := NewMockListFetcher(ctrl)
	fetcher.EXPECT().
		FetchUserProfile(gomock.Any(), "refa", gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	downloader := NewDownloader(fetcher, NewDatasetStore(cfg.DataDir), cfg)

	err := downloader.Run(t.Context())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "refa")
}
