package main

import (
	"context"
	"fmt"
	"strings"
)

// Analyzer runs the full taste analysis pipeline: validate the username,
// fetch the user's list, filter it to the requested category and compare it
// against the configured reference users.
type Analyzer struct {
	fetcher ListFetcher
	store   *DatasetStore
	cfg     Config
}

// NewAnalyzer wires an analyzer over the shared fetcher and dataset store.
func NewAnalyzer(fetcher ListFetcher, store *DatasetStore, cfg Config) *Analyzer {
	return &Analyzer{fetcher: fetcher, store: store, cfg: cfg}
}

// ValidateUsername rejects identifiers that cannot be a platform username:
// empty or whitespace-only strings, strings over MaxUsernameLength bytes and
// strings containing control characters.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return NewValidationError("username must not be empty")
	}
	if len(username) > MaxUsernameLength {
		return NewValidationError(fmt.Sprintf("username exceeds %d characters", MaxUsernameLength))
	}
	for _, r := range username {
		if r < 0x20 || r == 0x7F {
			return NewValidationError("username contains control characters")
		}
	}
	return nil
}

// Analyze runs the pipeline for one user. Every returned error is an
// *AnalysisError carrying the stage it came from; progress reporting through
// fn is advisory and never affects the result.
func (a *Analyzer) Analyze(ctx context.Context, username string, platform Platform, mode Mode, comparisonMode ComparisonMode, fn ProgressFunc) (*ResultRecord, error) {
	tracker := newProgressTracker(fn)

	result, err := a.analyze(ctx, username, platform, mode, comparisonMode, tracker)
	if err != nil {
		tagged := WrapUnknownError(err)
		tracker.report(StageError, tagged.Message, 0)
		return nil, tagged
	}

	tracker.report(StageComplete, "Analysis complete", progressComplete)
	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, username string, platform Platform, mode Mode, comparisonMode ComparisonMode, tracker *progressTracker) (*ResultRecord, error) {
	tracker.report(StageValidating, "Validating username", progressValidating)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	tracker.report(StageFetching, "Fetching anime list", progressFetching)
	profile, err := a.fetcher.FetchUserProfile(ctx, username, platform, func(sub int, message string) {
		tracker.report(StageFetching, message, fetchPercent(sub))
	})
	if err != nil {
		return nil, NewFetchError(err)
	}

	tracker.report(StageAnalyzing, "Comparing against reference users", progressAnalyzing)

	userList := FilterByMode(translatedProfileList(profile.AnimeList, profile.ScoreFormat), mode)

	rated := 0
	for _, r := range userList {
		if r.Rated() {
			rated++
		}
	}
	if rated == 0 {
		return nil, NewAnalysisError(fmt.Sprintf("no rated %s anime found in your list", mode))
	}

	refs := referencesFor(a.cfg, comparisonMode)
	references, err := a.store.ReferenceListsFor(ctx, refs, mode, comparisonMode)
	if err != nil {
		return nil, &AnalysisError{Code: ErrCodeAnalysis, Message: "reference dataset unavailable, run download first", Err: err}
	}

	comparisons := BuildCommonSet(ctx, userList, references)
	if len(comparisons) == 0 {
		return nil, NewAnalysisError(fmt.Sprintf("no common %s anime found - try %s mode", mode, OtherMode(mode)))
	}

	LogDebug(ctx, "Common set: %d of %d rated %s anime", len(comparisons), rated, mode)

	result := &ResultRecord{
		Username:       profile.Username,
		Platform:       platform,
		Mode:           mode,
		ComparisonMode: comparisonMode,
		ScoreFormat:    profile.ScoreFormat,
		CommonAnime:    comparisons,
		TotalCommon:    len(comparisons),
		Confidence:     Confidence(len(comparisons)),
	}

	for i, ref := range references {
		result.References = append(result.References, ref.Name)
		result.AvgDeviations = append(result.AvgDeviations, AverageDeviation(comparisons, i))
		result.Similarities = append(result.Similarities, SimilarityScore(comparisons, i))
	}

	switch comparisonMode {
	case ComparisonFourUser:
		pos := CompassPosition(comparisons)
		result.Position2D = &pos
		result.Quadrant = references[QuadrantIndex(pos)].Name
	default:
		result.SpectrumPosition = floatPtr(SpectrumPosition(comparisons))
	}

	return result, nil
}
