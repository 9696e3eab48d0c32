package main

//go:generate mockgen -destination mock_fetcher_test.go -package main -source=fetch.go

import (
	"context"
	"fmt"
)

// FetchProgressFunc receives fetch sub-progress: a 0-100 percentage within
// the fetch itself and a human-readable message.
type FetchProgressFunc func(percent int, message string)

// ListFetcher abstracts fetching a user's full profile from a platform.
type ListFetcher interface {
	FetchUserProfile(ctx context.Context, username string, platform Platform, progress FetchProgressFunc) (*UserProfile, error)
}

// PlatformFetcher dispatches fetches to the AniList or MAL client.
type PlatformFetcher struct {
	anilist *AnilistClient
	mal     *MALClient
}

// NewPlatformFetcher creates a fetcher backed by both platform clients.
func NewPlatformFetcher(anilist *AnilistClient, mal *MALClient) *PlatformFetcher {
	return &PlatformFetcher{anilist: anilist, mal: mal}
}

func (f *PlatformFetcher) FetchUserProfile(ctx context.Context, username string, platform Platform, progress FetchProgressFunc) (*UserProfile, error) {
	switch platform {
	case PlatformAnilist:
		return f.anilist.FetchUserProfile(ctx, username, progress)
	case PlatformMyAnimeList:
		return f.mal.FetchUserProfile(ctx, username, progress)
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}
