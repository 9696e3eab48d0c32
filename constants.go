package main

import "time"

// API limits and pagination
const (
	AnilistListPerPage  = 50  // Entries per page for AniList mediaList queries
	MALListLimit        = 100 // Maximum items per page for MAL API
	ClassificationBatch = 10  // MAL IDs per AniList classification query
)

// Service names for logging
const (
	ServiceAnilist = "AniList"
	ServiceMAL     = "MAL"
	ServiceJikan   = "Jikan"
)

// Identifier validation limits
const (
	MaxUsernameLength = 200
)

// Timeout and retry constants
const (
	HTTPClientTimeout = 2 * time.Minute // HTTP client timeout for API requests
	HTTPMaxRetries    = 2               // Retries for transient HTTP failures
	JikanMaxRetries   = 2               // Retries inside the Jikan client
)

// File permissions for dataset files
const (
	DatasetFilePerms = 0o644
	DatasetDirPerms  = 0o750
)

// ClassificationCacheMaxAge bounds how long a cached genre/theme
// classification stays valid. Tag data on AniList moves slowly.
const ClassificationCacheMaxAge = 30 * 24 * time.Hour
