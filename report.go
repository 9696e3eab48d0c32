package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// How many titles the closest/furthest sections of a report show.
const reportTopCount = 5

// Report renders analysis results for the terminal through a Logger, or as
// JSON for machine consumption.
type Report struct {
	logger *Logger
}

// NewReport creates a report renderer over the given logger.
func NewReport(logger *Logger) *Report {
	return &Report{logger: logger}
}

// PrintJSON writes any result as indented JSON.
func (r *Report) PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintAnalysis renders a spectrum or compass analysis result.
func (r *Report) PrintAnalysis(result *ResultRecord) {
	r.logger.Info("")
	r.logger.Stage("=== Taste Analysis: %s (%s, %s mode) ===", result.Username, result.Platform, result.Mode)
	r.logger.Info("Common anime: %d", result.TotalCommon)
	r.logger.Info("Confidence: %.0f%% (%s)", result.Confidence, DescribeConfidence(result.Confidence))

	r.logger.Info("")
	r.logger.Info("Per-reference similarity:")
	for i, name := range result.References {
		r.logger.Info("  %-16s similarity %3d%%  avg deviation %.2f", name, result.Similarities[i], result.AvgDeviations[i])
	}

	switch {
	case result.SpectrumPosition != nil:
		pos := *result.SpectrumPosition
		r.logger.Info("")
		r.logger.Stage("Spectrum position: %.1f / 100", pos)
		r.logger.Info("%s", renderSpectrumBar(pos, result.References[0], result.References[1]))
		r.logger.InfoSuccess("%s", DescribeSpectrum(pos, result.References[0], result.References[1]))
	case result.Position2D != nil:
		p := *result.Position2D
		r.logger.Info("")
		r.logger.Stage("Compass position: x=%.1f y=%.1f (%s)", p.X, p.Y, DescribePosition2D(p))
		r.logger.InfoSuccess("%s", DescribeQuadrant(result.Quadrant))
	}

	r.printExtremes(result.CommonAnime)
	r.logger.Info("")
}

// printExtremes lists the titles driving the result: closest agreement and
// sharpest disagreement with the references.
func (r *Report) printExtremes(comparisons []ComparisonRecord) {
	type scored struct {
		title string
		dev   float64
	}

	var items []scored
	for _, c := range comparisons {
		var total float64
		var count int
		for _, ref := range c.Refs {
			if ref.Deviation != nil {
				total += *ref.Deviation
				count++
			}
		}
		if count == 0 {
			continue
		}
		items = append(items, scored{title: c.Anime.Title, dev: total / float64(count)})
	}
	if len(items) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].dev < items[j].dev })

	r.logger.Info("")
	r.logger.Info("Closest agreement:")
	for i, item := range items[:min(reportTopCount, len(items))] {
		r.logger.Info("  %d. %s (avg deviation %.1f)", i+1, item.title, item.dev)
	}

	if len(items) > reportTopCount {
		r.logger.Info("")
		r.logger.Info("Sharpest disagreement:")
		last := items[max(0, len(items)-reportTopCount):]
		for i := len(last) - 1; i >= 0; i-- {
			r.logger.Info("  %d. %s (avg deviation %.1f)", len(last)-i, last[i].title, last[i].dev)
		}
	}
}

// PrintComparison renders a direct head-to-head comparison.
func (r *Report) PrintComparison(result *DirectComparison) {
	r.logger.Info("")
	r.logger.Stage("=== %s vs %s (%s mode) ===", result.UserA.Username, result.UserB.Username, result.Mode)
	r.logger.Info("Joint rated anime: %d", result.TotalJoint)
	r.logger.InfoSuccess("Similarity: %d%%", result.SimilarityScore)
	r.logger.Info("Average deviation: %.1f", result.AverageDeviation)

	if len(result.CommonAnime) > 0 {
		r.logger.Info("")
		r.logger.Info("Biggest disagreements:")
		for i, j := range result.CommonAnime[:min(reportTopCount, len(result.CommonAnime))] {
			r.logger.Info("  %d. %-40s %s %.1f vs %s %.1f",
				i+1, j.Anime.Title, result.UserA.Username, j.ScoreA, result.UserB.Username, j.ScoreB)
		}
	}
	r.logger.Info("")
}

// PrintDatasetStatus renders the status of all dataset files.
func (r *Report) PrintDatasetStatus(statuses []DatasetStatus) {
	r.logger.Info("")
	r.logger.Stage("=== Reference Datasets ===")
	for _, s := range statuses {
		if !s.Exists {
			r.logger.Warn("%s: missing (run download)", s.File)
			continue
		}
		r.logger.InfoSuccess("%s: %d users, %d anime, downloaded %s (%.0fh ago)",
			s.File, s.TotalUsers, s.TotalAnime, s.DownloadedAt.Format("2006-01-02 15:04"), s.AgeHours)

		names := make([]string, 0, len(s.UserCounts))
		for name := range s.UserCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			r.logger.Info("  %s: %d anime", name, s.UserCounts[name])
		}
	}
	r.logger.Info("")
}

// renderSpectrumBar draws a fixed-width axis with a marker at the position.
func renderSpectrumBar(position float64, refA, refB string) string {
	const width = 40
	idx := int(position / 100 * float64(width-1))
	if idx < 0 {
		idx = 0
	}
	if idx > width-1 {
		idx = width - 1
	}

	bar := make([]byte, width)
	for i := range bar {
		bar[i] = '-'
	}
	bar[idx] = '*'

	return fmt.Sprintf("%s [%s] %s", refA, bar, refB)
}
