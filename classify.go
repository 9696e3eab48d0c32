package main

import (
	"context"
	"strings"

	"golang.org/x/time/rate"
)

const anilistClassificationQuery = `
	query ($malIds: [Int], $perPage: Int) {
		Page(page: 1, perPage: $perPage) {
			media(idMal_in: $malIds, type: ANIME) {
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
			}
		}
	}
`

type anilistClassificationResponse struct {
	Data struct {
		Page struct {
			Media []anilistMedia `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// ClassificationService answers, per MAL ID, whether a title qualifies for
// the fantasy and isekai filters. MAL lists carry genre names but no tag
// ranks, so the authoritative source is AniList's tag data, queried in
// batches by MAL ID; titles AniList has no mapping for fall back to a
// per-title Jikan lookup. All AniList traffic goes through the shared rate
// limiter passed in at construction, never a process-global one.
type ClassificationService struct {
	anilist *AnilistClient
	jikan   *JikanClient
	limiter *rate.Limiter
	cache   *ClassificationCache
}

// NewClassificationService wires the classification sources together. The
// cache is optional; without one every call hits the network.
func NewClassificationService(anilist *AnilistClient, jikan *JikanClient, limiter *rate.Limiter, cache *ClassificationCache) *ClassificationService {
	return &ClassificationService{anilist: anilist, jikan: jikan, limiter: limiter, cache: cache}
}

// ClassifyBatch classifies the given MAL IDs. A failed batch degrades to the
// Jikan fallback per title; a failed title is simply absent from the result,
// which the filters treat as "matches nothing". The done callback reports
// how many IDs have been processed.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, malIDs []int, done func(done, total int)) (map[int]Classification, error) {
	classes := make(map[int]Classification, len(malIDs))
	total := len(malIDs)
	processed := 0

	remaining := malIDs
	if s.cache != nil {
		remaining = make([]int, 0, len(malIDs))
		for _, id := range malIDs {
			if class, ok := s.cache.Get(id); ok {
				classes[id] = class
				processed++
				continue
			}
			remaining = append(remaining, id)
		}
		if processed > 0 && done != nil {
			done(processed, total)
		}
	}
	malIDs = remaining

	for start := 0; start < len(malIDs); start += ClassificationBatch {
		end := min(start+ClassificationBatch, len(malIDs))
		batch := malIDs[start:end]

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		found, err := s.classifyViaAnilist(ctx, batch)
		if err != nil {
			LogWarn(ctx, "[%s] Classification batch failed: %v", ServiceAnilist, err)
			found = map[int]Classification{}
		}

		for _, id := range batch {
			if class, ok := found[id]; ok {
				classes[id] = class
				s.cacheSet(id, class)
				continue
			}
			// AniList has no entry for this MAL ID; ask Jikan directly.
			class, err := s.jikan.ClassifyAnime(ctx, id)
			if err != nil {
				LogDebug(ctx, "[%s] No classification for MAL ID %d: %v", ServiceJikan, id, err)
				continue
			}
			classes[id] = class
			s.cacheSet(id, class)
		}

		processed += len(batch)
		if done != nil {
			done(processed, total)
		}
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx); err != nil {
			LogWarn(ctx, "Failed to save classification cache: %v", err)
		}
	}

	return classes, nil
}

func (s *ClassificationService) cacheSet(malID int, class Classification) {
	if s.cache != nil {
		s.cache.Set(malID, class)
	}
}

func (s *ClassificationService) classifyViaAnilist(ctx context.Context, malIDs []int) (map[int]Classification, error) {
	var resp anilistClassificationResponse
	err := s.anilist.query(ctx, anilistClassificationQuery, map[string]interface{}{
		"malIds":  malIDs,
		"perPage": ClassificationBatch,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, anilistErrorFor("", resp.Errors)
	}

	classes := make(map[int]Classification, len(resp.Data.Page.Media))
	for _, media := range resp.Data.Page.Media {
		if media.IDMal == nil {
			continue
		}

		class := Classification{
			Title: firstNonEmpty(media.Title.English, media.Title.Romaji, media.Title.Native),
		}
		for _, g := range media.Genres {
			if g == "Fantasy" {
				class.HasFantasy = true
			}
		}
		for _, tag := range media.Tags {
			if strings.EqualFold(tag.Name, "isekai") && tag.Rank >= themeRankThreshold {
				class.HasIsekai = true
				class.IsekaiRank = intPtr(tag.Rank)
			}
		}

		classes[*media.IDMal] = class
	}

	return classes, nil
}
