package main

import (
	"regexp"
	"strings"
)

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1, // deletion
				min(
					matrix[i][j-1]+1,      // insertion
					matrix[i-1][j-1]+cost, // substitution
				),
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

var (
	nonWordRegexp    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
)

// normalizeTitle normalizes a title for fuzzy comparison by stripping
// punctuation and collapsing whitespace. The deterministic matcher in
// matcher.go deliberately does NOT use this; it only lowercases and trims.
func normalizeTitle(title string) string {
	normalized := strings.ToLower(title)
	normalized = nonWordRegexp.ReplaceAllString(normalized, "")
	normalized = whitespaceRegexp.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}

// similarityRatio returns a 0..1 Levenshtein-based similarity between two
// already-normalized strings.
func similarityRatio(s1, s2 string) float64 {
	longer, shorter := s1, s2
	if len(s1) < len(s2) {
		longer, shorter = s2, s1
	}
	if len(longer) == 0 {
		return 1.0
	}

	distance := levenshteinDistance(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}
