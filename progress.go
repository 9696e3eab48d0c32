package main

// Stage labels reported through the progress sink.
const (
	StageValidating = "validating"
	StageFetching   = "fetching"
	StageAnalyzing  = "analyzing"
	StageComplete   = "complete"
	StageError      = "error"
)

// Progress points of the analysis pipeline. Fetch sub-progress is mapped
// into the band between progressFetching and progressAnalyzing.
const (
	progressValidating = 10
	progressFetching   = 30
	progressAnalyzing  = 70
	progressComplete   = 100
)

// ProgressFunc receives advisory pipeline progress: a stage label, a
// human-readable message and a percentage. It must not affect results.
type ProgressFunc func(stage, message string, percent int)

// progressTracker wraps a ProgressFunc and enforces monotonically
// non-decreasing percentages, so jittery sub-progress from the fetch layer
// can never move the bar backwards. The error stage is exempt so a failure
// can reset the bar.
type progressTracker struct {
	fn   ProgressFunc
	last int
}

func newProgressTracker(fn ProgressFunc) *progressTracker {
	return &progressTracker{fn: fn}
}

func (p *progressTracker) report(stage, message string, percent int) {
	if p.fn == nil {
		return
	}
	if percent < p.last && stage != StageError {
		percent = p.last
	}
	if percent > 100 {
		percent = 100
	}
	p.last = percent
	p.fn(stage, message, percent)
}

// fetchPercent maps a 0-100 fetch sub-progress value into the analysis
// pipeline's fetching band.
func fetchPercent(sub int) int {
	if sub < 0 {
		sub = 0
	}
	if sub > 100 {
		sub = 100
	}
	span := progressAnalyzing - progressFetching
	return progressFetching + sub*span/100
}
