package linesearch

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// wrapBad attaches context to ErrBadOptions.
func wrapBad(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadOptions, msg)
}

// ArmijoMet reports whether a trial value fNew at step alpha satisfies the
// sufficient-decrease condition
//
//	fNew ≤ f0 + c₁·α·slope
//
// where slope = g·d at the start of the search. A NaN fNew never satisfies
// the condition (the comparison is false), which makes backtracking walk the
// step back inside the objective's finite region.
func ArmijoMet(fNew, f0, slope, alpha, c1 float64) bool {
	return fNew <= f0+c1*alpha*slope
}

// Backtrack searches along direction d from x for a step α satisfying the
// Armijo condition, shrinking α geometrically on each failure.
//
// Inputs:
//
//   - f     — the objective; evaluated only at trial points x + α·d.
//   - x     — the current point (read-only here).
//   - d     — the search direction.
//   - xNew  — caller-provided buffer for the trial point; on success it
//     holds the accepted point x + α·d. len(xNew) == len(x) == len(d).
//   - f0    — objective value at x.
//   - slope — directional derivative g·d at x; must be negative.
//   - opts  — configuration; nil means DefaultOptions().
//
// Returns the accepted step alpha, the objective value fNew at xNew, the
// number of objective evaluations spent, and an error:
//
//   - ErrNotDescent — slope ≥ 0; xNew is untouched. The caller should reset
//     its direction upstream instead of stepping uphill.
//   - ErrNoDecrease — the backtrack budget (or MinStep) was exhausted with
//     no acceptable step; xNew holds the last rejected trial.
//
// Complexity: at most opts.MaxBacktracks evaluations of f.
func Backtrack(f func([]float64) float64, x, d, xNew []float64, f0, slope float64, opts *Options) (alpha, fNew float64, evals int, err error) {
	// 1) Resolve and validate configuration.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err = cfg.Validate(); err != nil {
		return 0, f0, 0, err
	}

	// 2) Validate geometry.
	if f == nil {
		return 0, f0, 0, wrapBad("objective function is nil")
	}
	if len(x) != len(d) || len(x) != len(xNew) {
		return 0, f0, 0, wrapBad("x, d and xNew must share one dimension")
	}

	// 3) Reject ascent (or flat) directions up front. Numerical drift in a
	//    solver's direction recursion can produce slope ≥ 0; proceeding
	//    would accept arbitrarily bad steps.
	if slope >= 0 {
		return 0, f0, 0, ErrNotDescent
	}

	// 4) Backtracking loop: try α, shrink on failure.
	alpha = cfg.InitialStep
	for i := 0; i < cfg.MaxBacktracks; i++ {
		// xNew = x + α·d
		floats.AddScaledTo(xNew, x, alpha, d)
		fNew = f(xNew)
		evals++

		if ArmijoMet(fNew, f0, slope, alpha, cfg.SufficientDecrease) {
			return alpha, fNew, evals, nil
		}

		alpha *= cfg.Contraction
		if alpha < cfg.MinStep {
			break
		}
	}

	// 5) Budget exhausted: recoverable failure, caller decides what's next.
	return alpha, fNew, evals, ErrNoDecrease
}
