package main

import "math"

// Number of references on the compass, and how many of them must have scored
// a title for the record to count.
const (
	compassReferences  = 4
	compassMinPresence = 2
)

// CompassPosition places the user on the 2-D compass spanned by four
// references ordered A,B,C,D with fixed corner semantics: A top-left,
// B top-right, C bottom-left, D bottom-right.
//
// Eligible records are those at least two references scored. Per-reference
// mean deviations are stretched to a 0..1 "alikeness" between the best and
// worst reference; this exaggerates small differences on purpose so results
// don't cluster at the center. Axis pulls are sums of two alikeness values
// per corner assignment, and each axis is the right/bottom share of its
// total pull.
func CompassPosition(comparisons []ComparisonRecord) Position2D {
	eligible := make([]ComparisonRecord, 0, len(comparisons))
	for _, c := range comparisons {
		present := 0
		for _, r := range c.Refs {
			if r.Deviation != nil {
				present++
			}
		}
		if present >= compassMinPresence {
			eligible = append(eligible, c)
		}
	}

	if len(eligible) == 0 {
		return Position2D{X: 50, Y: 50}
	}

	avg := make([]float64, compassReferences)
	for i := range avg {
		avg[i] = AverageDeviation(eligible, i)
	}

	minDev, maxDev := avg[0], avg[0]
	for _, d := range avg[1:] {
		minDev = math.Min(minDev, d)
		maxDev = math.Max(maxDev, d)
	}

	devRange := maxDev - minDev
	if devRange == 0 {
		// All four references equally close: exact center.
		return Position2D{X: 50, Y: 50}
	}

	alikeness := make([]float64, compassReferences)
	for i, d := range avg {
		alikeness[i] = 1 - (d-minDev)/devRange
	}

	leftPull := alikeness[0] + alikeness[2]
	rightPull := alikeness[1] + alikeness[3]
	topPull := alikeness[0] + alikeness[1]
	bottomPull := alikeness[2] + alikeness[3]

	x, y := 50.0, 50.0
	if totalX := leftPull + rightPull; totalX > 0 {
		x = rightPull / totalX * 100
	}
	if totalY := topPull + bottomPull; totalY > 0 {
		y = bottomPull / totalY * 100
	}

	return Position2D{
		X: clamp(x, 0, 100),
		Y: clamp(y, 0, 100),
	}
}

// QuadrantIndex classifies a compass point into the index of the reference
// whose corner it falls in. The midline belongs to the right/bottom side.
func QuadrantIndex(p Position2D) int {
	switch {
	case p.X < 50 && p.Y < 50:
		return 0 // top-left
	case p.X >= 50 && p.Y < 50:
		return 1 // top-right
	case p.X < 50:
		return 2 // bottom-left
	default:
		return 3 // bottom-right
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
