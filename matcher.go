package main

import "strings"

// SameAnime decides whether two records from possibly different platforms
// denote the same title. First rule that applies wins:
//
//  1. both carry a MAL ID and they are equal;
//  2. same platform ID on the same source (raw IDs collide across platforms,
//     so equality alone proves nothing);
//  3. exact title equality after lowercasing and trimming.
//
// The title rule is intentionally exact. Fuzzy matching lives in
// TitlesLooselyMatch and is reserved for direct user-vs-user comparison;
// keeping it out of this path avoids false positives against the reference
// datasets.
func SameAnime(a, b AnimeRecord) bool {
	if a.MALID != nil && b.MALID != nil && *a.MALID == *b.MALID {
		return true
	}

	if a.PlatformID != 0 && a.PlatformID == b.PlatformID && a.Source == b.Source {
		return true
	}

	if a.Title == "" || b.Title == "" {
		return false
	}
	return strings.TrimSpace(strings.ToLower(a.Title)) == strings.TrimSpace(strings.ToLower(b.Title))
}

// Fuzzy title matching threshold for direct comparisons.
const titleSimilarityThreshold = 0.85

// TitlesLooselyMatch reports whether two titles likely denote the same anime.
// Used only by the direct user-vs-user comparison feature, never when
// matching against reference datasets.
func TitlesLooselyMatch(title1, title2 string) bool {
	if title1 == "" || title2 == "" {
		return false
	}

	norm1 := normalizeTitle(title1)
	norm2 := normalizeTitle(title2)

	if norm1 == norm2 {
		return true
	}

	// "Title" vs "Title: Subtitle" counts, unless the shorter side is so
	// short the containment is meaningless.
	if strings.Contains(norm1, norm2) || strings.Contains(norm2, norm1) {
		shorter := norm1
		if len(norm2) < len(norm1) {
			shorter = norm2
		}
		return len(shorter) > 3
	}

	return similarityRatio(norm1, norm2) > titleSimilarityThreshold
}
