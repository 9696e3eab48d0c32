package main

import (
	"context"
	"math"
	"sort"
)

// JointRecord is one title both users have on their lists, with both scores
// brought onto the 0-10 scale.
type JointRecord struct {
	Anime AnimeRecord `json:"anime"`

	ScoreA            float64 `json:"scoreA"`
	ScoreB            float64 `json:"scoreB"`
	Deviation         float64 `json:"deviation"` // ScoreA - ScoreB
	AbsoluteDeviation float64 `json:"absoluteDeviation"`
	Agreement         int     `json:"agreement"` // 0-100
}

// ScatterPoint is one joint title as a plottable score pair.
type ScatterPoint struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Title      string   `json:"title"`
	ID         int      `json:"id"`
	CoverImage string   `json:"coverImage,omitempty"`
	Genres     []string `json:"genres,omitempty"`
}

// DirectComparison is the head-to-head result between two named users, as
// opposed to the reference-anchored spectrum analysis.
type DirectComparison struct {
	UserA *UserProfile `json:"user1"`
	UserB *UserProfile `json:"user2"`
	Mode  Mode         `json:"mode"`

	// CommonAnime holds only titles both users rated, sorted by absolute
	// deviation descending so the biggest disagreements come first.
	CommonAnime      []JointRecord  `json:"commonAnime"`
	TotalJoint       int            `json:"totalJointAnime"`
	SimilarityScore  int            `json:"similarityScore"`
	AverageDeviation float64        `json:"averageDeviation"`
	Scatter          []ScatterPoint `json:"scatterPlot,omitempty"`
}

// CompareUsers matches two users' category-filtered lists against each other
// and derives the joint scoring analysis. Identifier matching comes first;
// titles that miss on identifiers fall back to loose title matching, which
// is acceptable here because both lists belong to known users and a rare
// false pair shifts one deviation, not a reference anchor.
//
// Scores are brought onto the 0-10 scale through each profile's own score
// format. The raw-scale heuristic only covers profiles that carry no format
// at all, such as records rehydrated from older dataset files.
func CompareUsers(ctx context.Context, userA, userB *UserProfile, mode Mode) *DirectComparison {
	listA := FilterByMode(translatedProfileList(userA.AnimeList, userA.ScoreFormat), mode)
	listB := FilterByMode(translatedProfileList(userB.AnimeList, userB.ScoreFormat), mode)

	LogDebug(ctx, "Direct comparison %s (%d %s anime) vs %s (%d %s anime)",
		userA.Username, len(listA), mode, userB.Username, len(listB), mode)

	joint := make([]JointRecord, 0, len(listA))
	for _, a := range listA {
		match := findDirectMatch(listB, a)
		if match == nil || a.Score == nil || match.Score == nil {
			continue
		}

		scoreA := *a.Score
		if userA.ScoreFormat == "" {
			scoreA = normalizeRawScale(scoreA, 10)
		}
		scoreB := *match.Score
		if userB.ScoreFormat == "" {
			scoreB = normalizeRawScale(scoreB, 10)
		}
		deviation := scoreA - scoreB
		absDev := math.Abs(deviation)

		record := a
		if record.CoverImage == "" {
			record.CoverImage = match.CoverImage
		}
		record.Genres = mergeUnique(a.Genres, match.Genres)

		joint = append(joint, JointRecord{
			Anime:             record,
			ScoreA:            round1(scoreA),
			ScoreB:            round1(scoreB),
			Deviation:         round1(deviation),
			AbsoluteDeviation: round1(absDev),
			Agreement:         similarityFromMeanDeviation(absDev),
		})
	}

	sort.SliceStable(joint, func(i, j int) bool {
		return joint[i].AbsoluteDeviation > joint[j].AbsoluteDeviation
	})

	result := &DirectComparison{
		UserA:       userA,
		UserB:       userB,
		Mode:        mode,
		CommonAnime: joint,
		TotalJoint:  len(joint),
	}

	if len(joint) > 0 {
		var total float64
		for _, j := range joint {
			total += j.AbsoluteDeviation
		}
		avg := total / float64(len(joint))
		result.AverageDeviation = round1(avg)
		result.SimilarityScore = similarityFromMeanDeviation(avg)
	}

	for _, j := range joint {
		result.Scatter = append(result.Scatter, ScatterPoint{
			X:          j.ScoreA,
			Y:          j.ScoreB,
			Title:      j.Anime.Title,
			ID:         j.Anime.PlatformID,
			CoverImage: j.Anime.CoverImage,
			Genres:     j.Anime.Genres,
		})
	}

	return result
}

func findDirectMatch(list []AnimeRecord, target AnimeRecord) *AnimeRecord {
	for i := range list {
		if SameAnime(list[i], target) {
			return &list[i]
		}
	}
	for i := range list {
		if TitlesLooselyMatch(list[i].Title, target.Title) {
			return &list[i]
		}
	}
	return nil
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	return merged
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
