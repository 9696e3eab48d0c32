package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

const jikanBaseURL = "https://api.jikan.moe/v4"

// ProfileStats is the slice of a MAL profile the analyzer cares about.
type ProfileStats struct {
	MeanScore    float64
	TotalEntries int
	Completed    int
}

// jikanStatisticsResponse wraps the Jikan API v4 user statistics response.
type jikanStatisticsResponse struct {
	Data struct {
		Anime struct {
			MeanScore    float64 `json:"mean_score"`
			TotalEntries int     `json:"total_entries"`
			Completed    int     `json:"completed"`
		} `json:"anime"`
	} `json:"data"`
}

// jikanAnimeResponse wraps the Jikan API v4 single-anime response.
type jikanAnimeResponse struct {
	Data struct {
		MalID  int    `json:"mal_id"`
		Title  string `json:"title"`
		Genres []struct {
			Name string `json:"name"`
		} `json:"genres"`
		Themes []struct {
			Name string `json:"name"`
		} `json:"themes"`
	} `json:"data"`
}

// JikanClient reads MAL user statistics and per-title genre/theme data from
// the Jikan API, which needs no authentication. The rate limiter is passed
// in so the whole process shares one request budget.
type JikanClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewJikanClient creates a Jikan client throttled by the given limiter.
func NewJikanClient(limiter *rate.Limiter) *JikanClient {
	return &JikanClient{
		baseURL: jikanBaseURL,
		httpClient: &http.Client{
			Timeout:   HTTPClientTimeout,
			Transport: newLoggingRoundTripper(newRetryableTransport(nil, JikanMaxRetries)),
		},
		limiter: limiter,
	}
}

// UserStatistics fetches a MAL user's anime statistics.
func (c *JikanClient) UserStatistics(ctx context.Context, username string) (*ProfileStats, error) {
	apiURL := fmt.Sprintf("%s/users/%s/statistics", c.baseURL, url.PathEscape(username))

	var jResp jikanStatisticsResponse
	if err := c.getJSON(ctx, apiURL, &jResp); err != nil {
		return nil, fmt.Errorf("jikan statistics for %q: %w", username, err)
	}

	return &ProfileStats{
		MeanScore:    jResp.Data.Anime.MeanScore,
		TotalEntries: jResp.Data.Anime.TotalEntries,
		Completed:    jResp.Data.Anime.Completed,
	}, nil
}

// ClassifyAnime looks up one title's genres and themes by MAL ID. Jikan
// exposes no tag ranks, so an Isekai theme is reported without one.
func (c *JikanClient) ClassifyAnime(ctx context.Context, malID int) (Classification, error) {
	apiURL := fmt.Sprintf("%s/anime/%d", c.baseURL, malID)

	var jResp jikanAnimeResponse
	if err := c.getJSON(ctx, apiURL, &jResp); err != nil {
		return Classification{}, fmt.Errorf("jikan anime %d: %w", malID, err)
	}

	class := Classification{Title: jResp.Data.Title}
	for _, g := range jResp.Data.Genres {
		if strings.Contains(strings.ToLower(g.Name), "fantasy") {
			class.HasFantasy = true
		}
	}
	for _, t := range jResp.Data.Themes {
		if strings.Contains(strings.ToLower(t.Name), "isekai") {
			class.HasIsekai = true
		}
	}

	return class, nil
}

// getJSON performs a rate-limited GET and decodes the body into out.
func (c *JikanClient) getJSON(ctx context.Context, apiURL string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	LogDebug(ctx, "[%s] GET %s", ServiceJikan, apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
