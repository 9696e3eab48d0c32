package main

import (
	"github.com/rl404/verniy"
)

// MAL scores are whole numbers on the 10-point scale.
const malScoreFormat = verniy.ScoreFormatPoint10

// NormalizeScore maps a raw rating plus its originating AniList score format
// onto the canonical 0-10 scale. POINT_10 and POINT_10_DECIMAL are returned
// unchanged; raw values outside a format's defined points pass through
// untouched rather than being guessed at.
func NormalizeScore(score float64, format verniy.ScoreFormat) float64 {
	switch format {
	case verniy.ScoreFormatPoint3:
		// 3-level smiley: frown, neutral, smile.
		switch score {
		case 1:
			return 3.5
		case 2:
			return 6.0
		case 3:
			return 8.5
		}
		return score

	case verniy.ScoreFormatPoint5:
		// 5-star accounts store stars as 10/30/50/70/90.
		switch score {
		case 10:
			return 1.0
		case 30:
			return 3.0
		case 50:
			return 5.0
		case 70:
			return 7.0
		case 90:
			return 9.0
		}
		return score

	case verniy.ScoreFormatPoint100:
		return score / 10

	default:
		return score
	}
}

// translatedProfileList returns the profile's records with scores brought onto
// the 0-10 scale. Formats that already live on that scale are returned as-is;
// otherwise each rated record keeps its original score and scoring system for
// display alongside the translated value.
func translatedProfileList(records []AnimeRecord, format verniy.ScoreFormat) []AnimeRecord {
	if format == "" || format == verniy.ScoreFormatPoint10 || format == verniy.ScoreFormatPoint100Decimal {
		return records
	}

	translated := make([]AnimeRecord, len(records))
	for i, rec := range records {
		if rec.Score != nil {
			raw := *rec.Score
			rec.OriginalScore = floatPtr(raw)
			rec.ScoringSystem = format
			rec.Score = floatPtr(NormalizeScore(raw, format))
		}
		translated[i] = rec
	}
	return translated
}

// normalizeRawScale is a heuristic for scores whose originating scale is
// unknown: records from profiles carrying no score format at all. It must
// not be used when a score format is available; NormalizeScore is the
// authoritative mapping in that case.
func normalizeRawScale(score, maxScale float64) float64 {
	switch {
	case score <= 1:
		return score * maxScale
	case score <= 5:
		return score / 5 * maxScale
	case score <= 10:
		return score
	case score <= 100:
		return score / 100 * maxScale
	default:
		return maxScale
	}
}
