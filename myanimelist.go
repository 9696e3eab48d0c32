package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nstratos/go-myanimelist/mal"
	"golang.org/x/oauth2"
)

var animeListFields = mal.Fields{
	"list_status",
	"genres",
	"num_episodes",
	"media_type",
	"start_season",
	"main_picture",
}

// clientIDTransport authenticates public MAL API reads with the registered
// client ID. Full OAuth is only needed for writes, which this tool never does.
type clientIDTransport struct {
	clientID string
	base     http.RoundTripper
}

func (t *clientIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-MAL-CLIENT-ID", t.clientID)
	return t.base.RoundTrip(r)
}

// MALClient fetches user lists from the MyAnimeList REST API. MAL profiles
// carry no tag data and no score format, so the client leans on two
// collaborators: Jikan for profile statistics and the classification service
// for category tagging.
type MALClient struct {
	c          *mal.Client
	classifier *ClassificationService
	jikan      *JikanClient
}

// NewMALClient creates a MAL client. An access token in the config takes
// precedence over the client ID header.
func NewMALClient(ctx context.Context, cfg Config, classifier *ClassificationService, jikan *JikanClient, timeout time.Duration) *MALClient {
	base := newLoggingRoundTripper(newRetryableTransport(nil, HTTPMaxRetries))

	var httpClient *http.Client
	if token := cfg.MyAnimeList.AccessToken; token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base, Timeout: timeout})
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		httpClient.Timeout = timeout
	} else {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: &clientIDTransport{clientID: cfg.MyAnimeList.ClientID, base: base},
		}
	}

	return &MALClient{
		c:          mal.NewClient(httpClient),
		classifier: classifier,
		jikan:      jikan,
	}
}

// FetchUserProfile retrieves a MAL user's anime list and enriches it so the
// category filters can treat it like an AniList list: mean score and counts
// come from Jikan, Fantasy/Isekai tagging from the classification service.
// MAL scores are always whole numbers on the 10-point scale.
func (c *MALClient) FetchUserProfile(ctx context.Context, username string, progress FetchProgressFunc) (*UserProfile, error) {
	profile := &UserProfile{
		Username:    username,
		Platform:    PlatformMyAnimeList,
		ScoreFormat: malScoreFormat,
	}

	// Best effort: list fetching works without statistics.
	estimatedPages := 0
	if stats, err := c.jikan.UserStatistics(ctx, username); err != nil {
		LogWarn(ctx, "[%s] Could not fetch statistics for %s: %v", ServiceJikan, username, err)
	} else {
		profile.MeanScore = stats.MeanScore
		profile.AnimeCount = stats.TotalEntries
		estimatedPages = stats.TotalEntries/MALListLimit + 1
	}

	var offset, page int
	for {
		page++
		if progress != nil {
			msg := fmt.Sprintf("Fetching MAL page %d", page)
			percent := 5
			if estimatedPages > 0 {
				msg = fmt.Sprintf("Fetching MAL page %d of ~%d", page, estimatedPages)
				percent = page * 50 / estimatedPages
			}
			progress(percent, msg)
		}

		list, resp, err := c.c.User.AnimeList(ctx, username, animeListFields, mal.Offset(offset), mal.Limit(MALListLimit))
		if err != nil {
			return nil, malUserError(username, err)
		}

		for _, entry := range list {
			profile.AnimeList = append(profile.AnimeList, recordFromMALEntry(entry))
		}

		if resp.NextOffset == 0 {
			break
		}
		offset = resp.NextOffset
	}

	if profile.AnimeCount == 0 {
		profile.AnimeCount = len(profile.AnimeList)
	}

	malIDs := make([]int, 0, len(profile.AnimeList))
	for _, rec := range profile.AnimeList {
		if rec.MALID != nil {
			malIDs = append(malIDs, *rec.MALID)
		}
	}

	classes, err := c.classifier.ClassifyBatch(ctx, malIDs, func(done, total int) {
		if progress != nil && total > 0 {
			progress(50+done*50/total, fmt.Sprintf("Classifying titles %d/%d", done, total))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed for %s: %w", username, err)
	}
	profile.AnimeList = ApplyClassification(profile.AnimeList, classes)

	LogDebug(ctx, "[%s] Fetched %d entries for %s", ServiceMAL, len(profile.AnimeList), username)

	return profile, nil
}

// recordFromMALEntry maps one MAL list entry to an AnimeRecord. MAL-native
// records carry the MAL ID as both identifiers.
func recordFromMALEntry(entry mal.UserAnime) AnimeRecord {
	rec := AnimeRecord{
		PlatformID: entry.Anime.ID,
		MALID:      intPtr(entry.Anime.ID),
		Title:      entry.Anime.Title,
		Status:     string(entry.Status.Status),
		Source:     PlatformMyAnimeList,
		CoverImage: firstNonEmpty(entry.Anime.MainPicture.Large, entry.Anime.MainPicture.Medium),
		Episodes:   entry.Anime.NumEpisodes,
		Format:     entry.Anime.MediaType,
		Year:       entry.Anime.StartSeason.Year,
	}

	for _, g := range entry.Anime.Genres {
		rec.Genres = append(rec.Genres, g.Name)
	}

	if entry.Status.Score > 0 {
		rec.Score = floatPtr(float64(entry.Status.Score))
	}

	return rec
}

// malUserError rewrites HTTP-level failures into actionable messages.
func malUserError(username string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "404"):
		return fmt.Errorf("user %q not found on MyAnimeList, check the username spelling", username)
	case strings.Contains(msg, "403"):
		return fmt.Errorf("user %q has a private anime list on MyAnimeList", username)
	default:
		return fmt.Errorf("MyAnimeList API error for %q: %w", username, err)
	}
}
