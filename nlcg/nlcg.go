package nlcg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// beta computes the conjugacy coefficient for the configured variant from
// the current and previous gradients. The result is clamped at zero:
// a negative coefficient means conjugacy is lost and the caller restarts
// from steepest descent.
func beta(v Variant, g, gPrev []float64) float64 {
	gg := floats.Dot(gPrev, gPrev)
	if gg == 0 {
		return 0
	}

	var b float64
	switch v {
	case FletcherReeves:
		b = floats.Dot(g, g) / gg
	default: // PolakRibiere
		b = (floats.Dot(g, g) - floats.Dot(g, gPrev)) / gg
	}
	if b < 0 {
		return 0
	}

	return b
}

// Minimize drives x toward a stationary point of p with nonlinear
// conjugate gradient, mutating x in place. The returned Result reports how
// the run ended; x always holds the last iterate reached.
//
// Per iteration:
//  1. Stop on NaN/Inf (NotFinite), ‖∇f‖ < GradTol (GradientThreshold), or
//     stagnation when Patience is set.
//  2. Direction: d = −∇f + β·d_prev with β from the configured Variant,
//     clamped at zero. The direction resets to −∇f on the first iteration,
//     every RestartInterval iterations (dimension by default), whenever
//     β = 0, and whenever d drifts into an ascent direction.
//  3. Backtracking line search along d; an exhausted budget ends the run
//     as LinesearchFailure.
//  4. Advance x, remember ∇f and d for the next coefficient.
//
// Errors are returned only for invalid input (core.ErrNilProblem,
// core.ErrEmptyIterate, ErrBadOptions); non-convergence is a Status.
//
// Internal state is rebuilt on every call: successive calls on one
// configuration are fully independent.
//
// Complexity: O(len(x)) per iteration plus evaluation cost.
func Minimize(p core.Problem, x []float64, opts *Options) (core.Result, error) {
	var res core.Result

	// 1) Validate input.
	if p == nil {
		return res, core.ErrNilProblem
	}
	n := len(x)
	if n == 0 {
		return res, core.ErrEmptyIterate
	}
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	restartEvery := cfg.RestartInterval
	if restartEvery == 0 {
		restartEvery = n
	}

	// 2) Per-call state.
	cp := &core.Counted{P: p}
	g := make([]float64, n)
	gPrev := make([]float64, n)
	gNew := make([]float64, n)
	d := make([]float64, n)
	xNew := make([]float64, n)
	tracker := core.NewTracker(cfg.Patience, cfg.StagnationTol)

	// 3) Initial evaluation.
	f := cp.Value(x)
	cp.Gradient(g, x)

	// 4) Main loop.
	res.Status = core.IterationLimit
	sinceRestart := 0
	var slope, fNew, b float64
	var err error
	for it := 0; it < cfg.MaxIterations; it++ {
		// 4a) Numerical-health and convergence checks.
		if !core.Finite(x) || !core.Finite(g) {
			res.Status = core.NotFinite

			break
		}
		gNorm := floats.Norm(g, 2)
		if gNorm < cfg.GradTol {
			res.Status = core.GradientThreshold

			break
		}
		if tracker.Update(f) {
			res.Status = core.Stagnation

			break
		}

		// 4b) Direction update with restart policy.
		if it == 0 || sinceRestart >= restartEvery {
			b = 0
		} else {
			b = beta(cfg.Variant, g, gPrev)
		}
		if b == 0 {
			// Steepest-descent restart.
			copy(d, g)
			floats.Scale(-1, d)
			sinceRestart = 0
		} else {
			// d = −g + β·d_prev
			for i := range d {
				d[i] = -g[i] + b*d[i]
			}
		}
		slope = floats.Dot(g, d)
		if slope >= 0 {
			// Conjugacy drifted into an ascent direction: restart.
			copy(d, g)
			floats.Scale(-1, d)
			slope = -gNorm * gNorm
			sinceRestart = 0
		}

		// 4c) Line search along d.
		_, fNew, _, err = linesearch.Backtrack(cp.Value, x, d, xNew, f, slope, &cfg.LineSearch)
		if err != nil {
			res.Status = core.LinesearchFailure

			break
		}

		// 4d) Advance; keep the old gradient for the next β.
		cp.Gradient(gNew, xNew)
		copy(gPrev, g)
		copy(g, gNew)
		copy(x, xNew)
		f = fNew
		sinceRestart++
		res.Iterations++
	}

	// 5) Finalize the report.
	res.Value = f
	res.GradNorm = floats.Norm(g, 2)
	res.FuncEvals = cp.FuncEvals
	res.GradEvals = cp.GradEvals

	return res, nil
}
