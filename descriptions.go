package main

import "fmt"

// Presentation-only text mapping. Kept as plain range tables so nothing here
// can leak into the analyzer's numbers.

type rangeText struct {
	upTo float64 // exclusive upper bound; the last entry catches the rest
	text string
}

func lookupRange(table []rangeText, value float64) string {
	for _, entry := range table[:len(table)-1] {
		if value < entry.upTo {
			return entry.text
		}
	}
	return table[len(table)-1].text
}

var spectrumTexts = []rangeText{
	{10, "Extremely %[1]s-aligned - You have very similar taste to %[1]s"},
	{25, "Strongly %[1]s-aligned - Your preferences lean heavily toward %[1]s's taste"},
	{40, "Moderately %[1]s-aligned - You share some similarities with %[1]s's preferences"},
	{60, "Balanced - Your taste falls somewhere between both reference users"},
	{75, "Moderately %[2]s-aligned - You share some similarities with %[2]s's preferences"},
	{90, "Strongly %[2]s-aligned - Your preferences lean heavily toward %[2]s's taste"},
	{101, "Extremely %[2]s-aligned - You have very similar taste to %[2]s"},
}

// DescribeSpectrum renders a human-readable description of a spectrum
// position between two named references (position 0 = first, 100 = second).
func DescribeSpectrum(position float64, refA, refB string) string {
	return fmt.Sprintf(lookupRange(spectrumTexts, position), refA, refB)
}

var confidenceTexts = []rangeText{
	{20, "Very Low - Based on very few common anime"},
	{40, "Low - Based on limited common anime"},
	{60, "Moderate - Based on a reasonable number of common anime"},
	{80, "High - Based on many common anime"},
	{101, "Very High - Based on extensive common anime data"},
}

// DescribeConfidence renders a confidence percentage as a level description.
func DescribeConfidence(confidence float64) string {
	return lookupRange(confidenceTexts, confidence)
}

// DescribeQuadrant names the compass corner the user landed in.
func DescribeQuadrant(reference string) string {
	return fmt.Sprintf("%[1]s Quadrant - You align most closely with %[1]s's taste", reference)
}

var (
	horizontalTexts = []rangeText{
		{25, "Far Left"},
		{50, "Left"},
		{75, "Right"},
		{101, "Far Right"},
	}
	verticalTexts = []rangeText{
		{25, "Top"},
		{50, "Upper"},
		{75, "Lower"},
		{101, "Bottom"},
	}
)

// DescribePosition2D renders a coarse verbal location for a compass point.
func DescribePosition2D(p Position2D) string {
	return lookupRange(verticalTexts, p.Y) + " " + lookupRange(horizontalTexts, p.X)
}
