package core

import "math"

// Tracker detects stagnation of a minimization run: it watches the stream of
// objective values and reports when no sufficient relative improvement has
// been seen for a configured number of consecutive updates.
//
// An update improves when
//
//	(best − f) / max(|best|, 1) > threshold,
//
// in which case the stale counter resets and best is lowered. Otherwise the
// stale counter grows; once it reaches the patience, the tracker trips.
//
// A Tracker with patience ≤ 0 is disabled and never trips.
type Tracker struct {
	patience  int
	threshold float64

	best  float64
	stale int
}

// NewTracker returns a Tracker that trips after patience consecutive updates
// whose relative improvement is at most threshold. patience ≤ 0 disables the
// tracker; a negative threshold is treated as zero.
func NewTracker(patience int, threshold float64) *Tracker {
	if threshold < 0 {
		threshold = 0
	}
	t := &Tracker{patience: patience, threshold: threshold}
	t.Reset()

	return t
}

// Reset clears all accumulated state, as if no update had ever been seen.
func (t *Tracker) Reset() {
	t.best = math.Inf(1)
	t.stale = 0
}

// Update feeds the next objective value and reports whether the run has
// stagnated (patience consecutive non-improving updates).
func (t *Tracker) Update(f float64) bool {
	if t.patience <= 0 {
		return false
	}

	// Relative improvement against the best value seen so far.
	denom := math.Max(math.Abs(t.best), 1)
	if math.IsInf(t.best, 1) || (t.best-f)/denom > t.threshold {
		t.best = f
		t.stale = 0

		return false
	}

	t.stale++

	return t.stale >= t.patience
}

// Best returns the lowest objective value seen since the last Reset
// (+Inf before any update).
func (t *Tracker) Best() float64 { return t.best }

// Stale returns the current count of consecutive non-improving updates.
func (t *Tracker) Stale() int { return t.stale }
