package main

import "context"

// BuildCommonSet matches every record of the user's list against each
// reference list and keeps those present in at least one of them. For each
// reference the scan is linear and the first match wins; ties resolve by
// list order. A reference match without a score is recorded as absent, not
// zero. Emission follows the user's list order.
//
// A malformed record (no identifiers, no title) cannot match anything and is
// skipped with a warning instead of aborting the run.
func BuildCommonSet(ctx context.Context, userList []AnimeRecord, references []ReferenceList) []ComparisonRecord {
	comparisons := make([]ComparisonRecord, 0, len(userList))

	for _, userAnime := range userList {
		if userAnime.MALID == nil && userAnime.PlatformID == 0 && userAnime.Title == "" {
			LogWarn(ctx, "Skipping malformed record (no ids, no title)")
			continue
		}
		if !userAnime.Rated() {
			continue
		}

		refs := make([]RefComparison, len(references))
		matched := false

		for i, ref := range references {
			found := findMatch(ref.Records, userAnime)
			if found == nil {
				continue
			}
			matched = true

			if found.Score != nil {
				dev := *userAnime.Score - *found.Score
				if dev < 0 {
					dev = -dev
				}
				refs[i] = RefComparison{
					Score:     found.Score,
					Deviation: floatPtr(dev),
				}
			}
		}

		if matched {
			comparisons = append(comparisons, ComparisonRecord{
				Anime:     userAnime,
				UserScore: *userAnime.Score,
				Refs:      refs,
			})
		}
	}

	return comparisons
}

// findMatch returns the first record in list matching target, or nil.
func findMatch(list []AnimeRecord, target AnimeRecord) *AnimeRecord {
	for i := range list {
		if SameAnime(list[i], target) {
			return &list[i]
		}
	}
	return nil
}
