package main

import (
	"context"

	"golang.org/x/time/rate"
)

// App holds the fully wired object graph: platform clients, the dataset
// store and the services built on top of them.
type App struct {
	config Config
	logger *Logger

	anilist    *AnilistClient
	mal        *MALClient
	jikan      *JikanClient
	classifier *ClassificationService

	fetcher    *PlatformFetcher
	store      *DatasetStore
	analyzer   *Analyzer
	downloader *Downloader
	report     *Report
}

// NewApp creates an App instance with configured clients and services.
func NewApp(ctx context.Context, config Config, logger *Logger) *App {
	LogStage(ctx, "Initializing...")

	// One shared limiter paces every AniList and Jikan request the app makes,
	// whichever component fires it.
	limiter := rate.NewLimiter(rate.Limit(float64(config.AnilistRequestsPerMinute)/60.0), 1)

	anilist := NewAnilistClient(HTTPClientTimeout)
	LogDebug(ctx, "AniList client created")

	jikan := NewJikanClient(limiter)
	cache := NewClassificationCache(config.DataDir, ClassificationCacheMaxAge)
	classifier := NewClassificationService(anilist, jikan, limiter, cache)

	mal := NewMALClient(ctx, config, classifier, jikan, HTTPClientTimeout)
	LogDebug(ctx, "MAL client created")

	fetcher := NewPlatformFetcher(anilist, mal)
	store := NewDatasetStore(config.DataDir)

	return &App{
		config:     config,
		logger:     logger,
		anilist:    anilist,
		mal:        mal,
		jikan:      jikan,
		classifier: classifier,
		fetcher:    fetcher,
		store:      store,
		analyzer:   NewAnalyzer(fetcher, store, config),
		downloader: NewDownloader(fetcher, store, config),
		report:     NewReport(logger),
	}
}
