package main

import (
	"testing"

	"github.com/rl404/verniy"
)

func fantasyProfile(username string, records ...AnimeRecord) *UserProfile {
	for i := range records {
		records[i].Genres = append(records[i].Genres, "Fantasy")
	}
	return &UserProfile{
		Username:    username,
		Platform:    PlatformAnilist,
		ScoreFormat: verniy.ScoreFormatPoint10,
		AnimeList:   records,
	}
}

func TestCompareUsers(t *testing.T) {
	t.Parallel()

	userA := fantasyProfile("alice",
		ratedAnime(1, "Alpha", 8),
		ratedAnime(2, "Beta", 6),
		ratedAnime(3, "Gamma", 9),
	)
	userB := fantasyProfile("bob",
		ratedAnime(1, "Alpha", 8), // perfect agreement
		ratedAnime(2, "Beta", 2),  // big disagreement
	)

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)

	if got.TotalJoint != 2 {
		t.Fatalf("TotalJoint = %d; want 2", got.TotalJoint)
	}

	// Sorted by absolute deviation descending: Beta first.
	if got.CommonAnime[0].Anime.Title != "Beta" {
		t.Errorf("first entry = %s; want Beta (largest disagreement)", got.CommonAnime[0].Anime.Title)
	}
	if got.CommonAnime[0].AbsoluteDeviation != 4 {
		t.Errorf("Beta deviation = %v; want 4", got.CommonAnime[0].AbsoluteDeviation)
	}
	if got.CommonAnime[1].AbsoluteDeviation != 0 {
		t.Errorf("Alpha deviation = %v; want 0", got.CommonAnime[1].AbsoluteDeviation)
	}

	// Mean deviation 2 maps to 80% similarity.
	if got.SimilarityScore != 80 {
		t.Errorf("SimilarityScore = %d; want 80", got.SimilarityScore)
	}
	if got.AverageDeviation != 2 {
		t.Errorf("AverageDeviation = %v; want 2", got.AverageDeviation)
	}

	if len(got.Scatter) != 2 {
		t.Fatalf("scatter points = %d; want 2", len(got.Scatter))
	}
}

func TestCompareUsers_NoJointAnime(t *testing.T) {
	t.Parallel()

	userA := fantasyProfile("alice", ratedAnime(1, "Alpha", 8))
	userB := fantasyProfile("bob", ratedAnime(2, "Beta", 6))

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)

	if got.TotalJoint != 0 {
		t.Errorf("TotalJoint = %d; want 0", got.TotalJoint)
	}
	if got.SimilarityScore != 0 {
		t.Errorf("SimilarityScore = %d; want 0", got.SimilarityScore)
	}
}

func TestCompareUsers_UnratedExcluded(t *testing.T) {
	t.Parallel()

	userA := fantasyProfile("alice", ratedAnime(1, "Alpha", 8))
	userB := fantasyProfile("bob", unratedAnime(1, "Alpha"))

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)
	if got.TotalJoint != 0 {
		t.Errorf("TotalJoint = %d; want 0 when the match is unrated", got.TotalJoint)
	}
}

func TestCompareUsers_FuzzyTitleFallback(t *testing.T) {
	t.Parallel()

	// Different platform IDs, no MAL ID on one side: only the loose title
	// match can connect them.
	a := AnimeRecord{PlatformID: 100, Title: "Re:Zero", Score: floatPtr(9), Source: PlatformAnilist, Genres: []string{"Fantasy"}}
	b := AnimeRecord{PlatformID: 200, Title: "Re Zero", Score: floatPtr(7), Source: PlatformMyAnimeList, Genres: []string{"Fantasy"}}

	userA := &UserProfile{Username: "alice", AnimeList: []AnimeRecord{a}}
	userB := &UserProfile{Username: "bob", AnimeList: []AnimeRecord{b}}

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)
	if got.TotalJoint != 1 {
		t.Fatalf("TotalJoint = %d; want 1 via fuzzy title match", got.TotalJoint)
	}
	if got.CommonAnime[0].AbsoluteDeviation != 2 {
		t.Errorf("deviation = %v; want 2", got.CommonAnime[0].AbsoluteDeviation)
	}
}

func TestCompareUsers_KnownFormatsUseTranslation(t *testing.T) {
	t.Parallel()

	// A 3-level smiley "frown" translates to 3.5; a plain 10-point score of
	// 4 stays 4. Neither may go through the unknown-scale heuristic, which
	// would turn them into 10 and 8.
	a := ratedAnime(1, "Alpha", 1)
	b := ratedAnime(1, "Alpha", 4)
	a.Genres = []string{"Fantasy"}
	b.Genres = []string{"Fantasy"}

	userA := &UserProfile{Username: "alice", ScoreFormat: verniy.ScoreFormatPoint3, AnimeList: []AnimeRecord{a}}
	userB := &UserProfile{Username: "bob", ScoreFormat: verniy.ScoreFormatPoint10, AnimeList: []AnimeRecord{b}}

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)
	if got.TotalJoint != 1 {
		t.Fatalf("TotalJoint = %d; want 1", got.TotalJoint)
	}
	if got.CommonAnime[0].ScoreA != 3.5 {
		t.Errorf("ScoreA = %v; want 3.5", got.CommonAnime[0].ScoreA)
	}
	if got.CommonAnime[0].ScoreB != 4 {
		t.Errorf("ScoreB = %v; want 4", got.CommonAnime[0].ScoreB)
	}
	if got.CommonAnime[0].AbsoluteDeviation != 0.5 {
		t.Errorf("deviation = %v; want 0.5", got.CommonAnime[0].AbsoluteDeviation)
	}
}

func TestCompareUsers_RawScaleNormalization(t *testing.T) {
	t.Parallel()

	// Records without any score format can carry scores on unknown scales;
	// the heuristic brings both onto 0-10.
	a := ratedAnime(1, "Alpha", 85) // 100-point scale
	b := ratedAnime(1, "Alpha", 8)  // 10-point scale
	a.Genres = []string{"Fantasy"}
	b.Genres = []string{"Fantasy"}

	userA := &UserProfile{Username: "alice", AnimeList: []AnimeRecord{a}}
	userB := &UserProfile{Username: "bob", AnimeList: []AnimeRecord{b}}

	got := CompareUsers(t.Context(), userA, userB, ModeFantasy)
	if got.CommonAnime[0].ScoreA != 8.5 {
		t.Errorf("ScoreA = %v; want 8.5", got.CommonAnime[0].ScoreA)
	}
	if got.CommonAnime[0].AbsoluteDeviation != 0.5 {
		t.Errorf("deviation = %v; want 0.5", got.CommonAnime[0].AbsoluteDeviation)
	}
}

func TestMergeUnique(t *testing.T) {
	t.Parallel()

	got := mergeUnique([]string{"Action", "Fantasy"}, []string{"Fantasy", "Drama"})
	want := []string{"Action", "Fantasy", "Drama"}
	if len(got) != len(want) {
		t.Fatalf("mergeUnique() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mergeUnique()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}
