package main

import "strings"

// Minimum AniList tag rank for a tag to count as a theme.
const themeRankThreshold = 80

// FilterByMode returns the records matching a category filter. Fantasy wants
// the Fantasy genre or a fantasy-ish theme; isekai wants the Isekai theme.
// Themes are AniList tags at rank >= themeRankThreshold, or MAL themes
// supplied by classification.
func FilterByMode(records []AnimeRecord, mode Mode) []AnimeRecord {
	filtered := make([]AnimeRecord, 0, len(records))

	for _, rec := range records {
		switch mode {
		case ModeFantasy:
			if hasGenre(rec, "Fantasy") || hasThemeContaining(rec, "fantasy") {
				filtered = append(filtered, rec)
			}
		case ModeIsekai:
			if hasTheme(rec, "Isekai") || hasThemeContaining(rec, "isekai") {
				filtered = append(filtered, rec)
			}
		default:
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

func hasGenre(rec AnimeRecord, genre string) bool {
	for _, g := range rec.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

func hasTheme(rec AnimeRecord, theme string) bool {
	for _, t := range rec.Themes {
		if t == theme {
			return true
		}
	}
	return false
}

func hasThemeContaining(rec AnimeRecord, fragment string) bool {
	for _, t := range rec.Themes {
		if strings.Contains(strings.ToLower(t), fragment) {
			return true
		}
	}
	return false
}

// Classification is what the classification provider knows about one MAL
// title: whether it qualifies for each category filter.
type Classification struct {
	HasFantasy bool   `json:"hasFantasy"`
	HasIsekai  bool   `json:"hasIsekai"`
	IsekaiRank *int   `json:"isekaiRank,omitempty"`
	Title      string `json:"title,omitempty"`
}

// ApplyClassification enriches MAL-origin records, which lack native tag
// data, so FilterByMode treats them identically to AniList records.
func ApplyClassification(records []AnimeRecord, classes map[int]Classification) []AnimeRecord {
	enriched := make([]AnimeRecord, len(records))

	for i, rec := range records {
		if rec.MALID != nil {
			if class, ok := classes[*rec.MALID]; ok {
				if class.HasFantasy && !hasGenre(rec, "Fantasy") {
					rec.Genres = append(rec.Genres, "Fantasy")
				}
				if class.HasIsekai && !hasTheme(rec, "Isekai") {
					rec.Themes = append(rec.Themes, "Isekai")
					rec.IsekaiRank = class.IsekaiRank
				}
			}
		}
		enriched[i] = rec
	}

	return enriched
}
