package main

import (
	"fmt"

	"github.com/rl404/verniy"
)

// Platform identifies the service an anime list was fetched from.
type Platform string

const (
	PlatformAnilist     Platform = "anilist"
	PlatformMyAnimeList Platform = "mal"
)

// ParsePlatform converts a user-supplied platform name to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case string(PlatformAnilist):
		return PlatformAnilist, nil
	case string(PlatformMyAnimeList), "myanimelist":
		return PlatformMyAnimeList, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected %q or %q)", s, PlatformAnilist, PlatformMyAnimeList)
	}
}

// Mode is the category filter applied before matching.
type Mode string

const (
	ModeFantasy Mode = "fantasy"
	ModeIsekai  Mode = "isekai"
)

// ParseMode converts a user-supplied mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case string(ModeFantasy):
		return ModeFantasy, nil
	case string(ModeIsekai):
		return ModeIsekai, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeFantasy, ModeIsekai)
	}
}

// OtherMode returns the opposite category filter, used in error hints.
func OtherMode(m Mode) Mode {
	if m == ModeFantasy {
		return ModeIsekai
	}
	return ModeFantasy
}

// ComparisonMode selects between the 1-D spectrum and the 2-D compass.
type ComparisonMode string

const (
	ComparisonTwoUser  ComparisonMode = "2-user"
	ComparisonFourUser ComparisonMode = "4-user"
)

// ParseComparisonMode converts a user-supplied comparison mode to a ComparisonMode.
func ParseComparisonMode(s string) (ComparisonMode, error) {
	switch s {
	case string(ComparisonTwoUser), "2":
		return ComparisonTwoUser, nil
	case string(ComparisonFourUser), "4":
		return ComparisonFourUser, nil
	default:
		return "", fmt.Errorf("unknown comparison mode %q (expected %q or %q)", s, ComparisonTwoUser, ComparisonFourUser)
	}
}

// AnimeRecord is one title as seen on one platform for one user.
//
// PlatformID is the ID on the record's own source platform. MALID is the
// MyAnimeList-equivalent ID when known; MAL-native records carry it equal to
// PlatformID. A nil Score means the user watched but never rated the title;
// unrated records are excluded from similarity computation but still count
// for category filtering.
type AnimeRecord struct {
	PlatformID int      `json:"id"`
	MALID      *int     `json:"malId,omitempty"`
	Title      string   `json:"title"`
	Score      *float64 `json:"score,omitempty"`
	Status     string   `json:"status,omitempty"`
	Source     Platform `json:"source"`
	Genres     []string `json:"genres,omitempty"`
	Themes     []string `json:"themes,omitempty"`
	IsekaiRank *int     `json:"isekaiRank,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	Episodes   int      `json:"episodes,omitempty"`
	Format     string   `json:"format,omitempty"`
	Year       int      `json:"year,omitempty"`

	// Set by score translation so callers can show what the owner really entered.
	OriginalScore *float64           `json:"originalScore,omitempty"`
	ScoringSystem verniy.ScoreFormat `json:"scoringSystem,omitempty"`
}

// Rated reports whether the record carries a score.
func (a AnimeRecord) Rated() bool {
	return a.Score != nil
}

// UserProfile is one user's fetched state: identity, list and the score
// format their account used at fetch time.
type UserProfile struct {
	Username    string             `json:"username"`
	Platform    Platform           `json:"platform"`
	Avatar      string             `json:"avatar,omitempty"`
	AnimeList   []AnimeRecord      `json:"animeList"`
	MeanScore   float64            `json:"meanScore"`
	AnimeCount  int                `json:"animeCount"`
	ScoreFormat verniy.ScoreFormat `json:"scoreFormat"`
}

// ReferenceList is one reference user's already-filtered, already-translated
// record list. Order of references is significant: it fixes spectrum ends and
// compass corners.
type ReferenceList struct {
	Name    string
	Records []AnimeRecord
}

// RefComparison holds one reference's score for a matched title. Score is nil
// when the reference never matched the title, or matched it unrated.
// Deviation is |userScore - refScore| and set only when Score is.
type RefComparison struct {
	Score     *float64 `json:"score,omitempty"`
	Deviation *float64 `json:"deviation,omitempty"`
}

// ComparisonRecord is the result of matching one user record against all
// references. It exists only when at least one reference matched.
type ComparisonRecord struct {
	Anime     AnimeRecord     `json:"anime"`
	UserScore float64         `json:"userScore"`
	Refs      []RefComparison `json:"refs"`
}

// Position2D is a point on the 4-user compass, each axis in [0,100].
type Position2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ResultRecord is the final output of one analysis.
type ResultRecord struct {
	Username       string             `json:"username"`
	Platform       Platform           `json:"platform"`
	Mode           Mode               `json:"mode"`
	ComparisonMode ComparisonMode     `json:"comparisonMode"`
	ScoreFormat    verniy.ScoreFormat `json:"scoreFormat"`

	CommonAnime []ComparisonRecord `json:"commonAnime"`
	TotalCommon int                `json:"totalCommonAnime"`
	Confidence  float64            `json:"confidence"`

	// Per-reference aggregates, index-aligned with References.
	References    []string  `json:"references"`
	AvgDeviations []float64 `json:"averageDeviations"`
	Similarities  []int     `json:"similarities"`

	// Exactly one of the two position kinds is set, per ComparisonMode.
	SpectrumPosition *float64    `json:"spectrumPosition,omitempty"`
	Position2D       *Position2D `json:"position2D,omitempty"`
	Quadrant         string      `json:"quadrant,omitempty"`
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
