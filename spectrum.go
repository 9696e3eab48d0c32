package main

import "math"

// Common-anime count at which confidence reaches 100%.
const confidenceSaturation = 50

// Confidence maps the size of the common set to a confidence percentage:
// a linear ramp saturating at confidenceSaturation common anime.
func Confidence(commonCount int) float64 {
	return math.Min(100, float64(commonCount)/confidenceSaturation*100)
}

// SpectrumPosition places the user on the 0-100 axis between the first
// reference (0) and the second (100). Only records where both references
// scored the title participate; with none of those, or with perfect
// agreement with both, the position is the uninformative middle.
func SpectrumPosition(comparisons []ComparisonRecord) float64 {
	var totalFromA, totalFromB float64
	var count int

	for _, c := range comparisons {
		if len(c.Refs) < 2 || c.Refs[0].Deviation == nil || c.Refs[1].Deviation == nil {
			continue
		}
		totalFromA += *c.Refs[0].Deviation
		totalFromB += *c.Refs[1].Deviation
		count++
	}

	if count == 0 {
		return 50
	}

	avgFromA := totalFromA / float64(count)
	avgFromB := totalFromB / float64(count)

	total := avgFromA + avgFromB
	if total == 0 {
		return 50
	}

	// Higher deviation from the first reference pushes the position away
	// from its end of the axis.
	return avgFromA / total * 100
}

// AverageDeviation is the mean absolute deviation from one reference, taken
// over the records where that reference scored the title. No such records
// means zero.
func AverageDeviation(comparisons []ComparisonRecord, refIndex int) float64 {
	var total float64
	var count int

	for _, c := range comparisons {
		if refIndex >= len(c.Refs) || c.Refs[refIndex].Deviation == nil {
			continue
		}
		total += *c.Refs[refIndex].Deviation
		count++
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// SimilarityScore converts a mean absolute deviation over dually-scored
// records into a 0-100 percentage: zero deviation is 100, deviation of a
// full scale (10) or more is 0. Zero dually-scored records means 0, not an
// error.
func SimilarityScore(comparisons []ComparisonRecord, refIndex int) int {
	var total float64
	var count int

	for _, c := range comparisons {
		if refIndex >= len(c.Refs) || c.Refs[refIndex].Deviation == nil {
			continue
		}
		total += *c.Refs[refIndex].Deviation
		count++
	}

	if count == 0 {
		return 0
	}

	return similarityFromMeanDeviation(total / float64(count))
}

func similarityFromMeanDeviation(meanAbsDev float64) int {
	similarity := math.Max(0, (10-meanAbsDev)/10*100)
	return int(math.Round(similarity))
}
