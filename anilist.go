package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rl404/verniy"
)

// AnilistClient fetches public user profiles and lists from the AniList
// GraphQL API. List pages and the classification query are raw GraphQL via
// verniy's MakeRequest because they need genres and tag ranks, which the
// typed list helpers don't select.
type AnilistClient struct {
	c *verniy.Client
}

// NewAnilistClient creates an unauthenticated AniList client.
func NewAnilistClient(timeout time.Duration) *AnilistClient {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newLoggingRoundTripper(newRetryableTransport(nil, HTTPMaxRetries)),
	}

	v := verniy.New()
	v.Http = *httpClient

	return &AnilistClient{c: v}
}

const anilistUserQuery = `
	query ($username: String!) {
		User(name: $username) {
			id
			name
			avatar {
				large
			}
			statistics {
				anime {
					count
					meanScore
				}
			}
			mediaListOptions {
				scoreFormat
			}
		}
	}
`

const anilistListPageQuery = `
	query ($username: String!, $page: Int, $perPage: Int) {
		Page(page: $page, perPage: $perPage) {
			pageInfo {
				hasNextPage
				currentPage
				lastPage
			}
			mediaList(userName: $username, type: ANIME) {
				score
				status
				media {
					id
					idMal
					title {
						romaji
						english
						native
					}
					genres
					tags {
						name
						rank
					}
					coverImage {
						large
						medium
					}
					episodes
					format
					startDate {
						year
					}
				}
			}
		}
	}
`

type gqlError struct {
	Message string `json:"message"`
}

type anilistUserResponse struct {
	Data struct {
		User *struct {
			Name   string `json:"name"`
			Avatar struct {
				Large string `json:"large"`
			} `json:"avatar"`
			Statistics struct {
				Anime struct {
					Count     int     `json:"count"`
					MeanScore float64 `json:"meanScore"`
				} `json:"anime"`
			} `json:"statistics"`
			MediaListOptions struct {
				ScoreFormat string `json:"scoreFormat"`
			} `json:"mediaListOptions"`
		} `json:"User"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

type anilistMedia struct {
	ID    int  `json:"id"`
	IDMal *int `json:"idMal"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native"`
	} `json:"title"`
	Genres []string `json:"genres"`
	Tags   []struct {
		Name string `json:"name"`
		Rank int    `json:"rank"`
	} `json:"tags"`
	CoverImage struct {
		Large  string `json:"large"`
		Medium string `json:"medium"`
	} `json:"coverImage"`
	Episodes  int    `json:"episodes"`
	Format    string `json:"format"`
	StartDate struct {
		Year int `json:"year"`
	} `json:"startDate"`
}

type anilistListPageResponse struct {
	Data struct {
		Page struct {
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
				CurrentPage int  `json:"currentPage"`
				LastPage    int  `json:"lastPage"`
			} `json:"pageInfo"`
			MediaList []struct {
				Score  float64      `json:"score"`
				Status string       `json:"status"`
				Media  anilistMedia `json:"media"`
			} `json:"mediaList"`
		} `json:"Page"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// query sends a raw GraphQL request and decodes the response into out.
func (c *AnilistClient) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	responseBody, code, err := c.c.MakeRequest(ctx, body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	if code != http.StatusOK && code != http.StatusNotFound {
		return fmt.Errorf("AniList API returned status code %d: %s", code, string(responseBody))
	}

	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// anilistErrorFor translates a GraphQL error list into something a person
// who typed the username can act on.
func anilistErrorFor(username string, errs []gqlError) error {
	if len(errs) == 0 {
		return nil
	}

	msg := errs[0].Message
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not found"):
		return fmt.Errorf("user %q not found on AniList, check the username spelling", username)
	case strings.Contains(lower, "private"):
		return fmt.Errorf("user %q has a private profile on AniList, only public profiles can be analyzed", username)
	case strings.Contains(lower, "forbidden"):
		return fmt.Errorf("access to user %q is restricted on AniList", username)
	default:
		return fmt.Errorf("AniList API error: %s", msg)
	}
}

// FetchUserProfile retrieves a user's identity, score format and complete
// anime list. Entries with score 0 are kept as unrated records.
func (c *AnilistClient) FetchUserProfile(ctx context.Context, username string, progress FetchProgressFunc) (*UserProfile, error) {
	var userResp anilistUserResponse
	if err := c.query(ctx, anilistUserQuery, map[string]interface{}{"username": username}, &userResp); err != nil {
		return nil, err
	}
	if err := anilistErrorFor(username, userResp.Errors); err != nil {
		return nil, err
	}
	if userResp.Data.User == nil {
		return nil, fmt.Errorf("user %q not found on AniList, check the username spelling", username)
	}

	user := userResp.Data.User
	scoreFormat := verniy.ScoreFormat(user.MediaListOptions.ScoreFormat)
	if scoreFormat == "" {
		scoreFormat = verniy.ScoreFormatPoint100Decimal
	}

	profile := &UserProfile{
		Username:    user.Name,
		Platform:    PlatformAnilist,
		Avatar:      user.Avatar.Large,
		MeanScore:   user.Statistics.Anime.MeanScore,
		AnimeCount:  user.Statistics.Anime.Count,
		ScoreFormat: scoreFormat,
	}

	for page := 1; ; page++ {
		var listResp anilistListPageResponse
		err := c.query(ctx, anilistListPageQuery, map[string]interface{}{
			"username": username,
			"page":     page,
			"perPage":  AnilistListPerPage,
		}, &listResp)
		if err != nil {
			return nil, err
		}
		if err := anilistErrorFor(username, listResp.Errors); err != nil {
			return nil, err
		}

		for _, entry := range listResp.Data.Page.MediaList {
			profile.AnimeList = append(profile.AnimeList, recordFromAnilistEntry(entry.Media, entry.Score, entry.Status))
		}

		info := listResp.Data.Page.PageInfo
		if progress != nil && info.LastPage > 0 {
			progress(info.CurrentPage*100/info.LastPage,
				fmt.Sprintf("Fetched AniList page %d of %d", info.CurrentPage, info.LastPage))
		}

		if !info.HasNextPage {
			break
		}
	}

	if profile.AnimeCount == 0 {
		profile.AnimeCount = len(profile.AnimeList)
	}

	LogDebug(ctx, "[%s] Fetched %d entries for %s (score format %s)",
		ServiceAnilist, len(profile.AnimeList), username, scoreFormat)

	return profile, nil
}

// recordFromAnilistEntry maps one AniList media list entry to an AnimeRecord.
func recordFromAnilistEntry(media anilistMedia, score float64, status string) AnimeRecord {
	rec := AnimeRecord{
		PlatformID: media.ID,
		MALID:      media.IDMal,
		Title:      firstNonEmpty(media.Title.Romaji, media.Title.English, media.Title.Native),
		Status:     strings.ToLower(status),
		Source:     PlatformAnilist,
		Genres:     media.Genres,
		CoverImage: firstNonEmpty(media.CoverImage.Large, media.CoverImage.Medium),
		Episodes:   media.Episodes,
		Format:     media.Format,
		Year:       media.StartDate.Year,
	}

	if score > 0 {
		rec.Score = floatPtr(score)
	}

	for _, tag := range media.Tags {
		if tag.Rank < themeRankThreshold {
			continue
		}
		rec.Themes = append(rec.Themes, tag.Name)
		if strings.EqualFold(tag.Name, "isekai") {
			rec.IsekaiRank = intPtr(tag.Rank)
		}
	}

	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
