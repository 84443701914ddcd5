package lbfgs

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// Minimize drives x toward a stationary point of p with limited-memory
// BFGS, mutating x in place. The returned Result reports how the run ended
// and what it cost; x always holds the last iterate reached.
//
// Per iteration:
//  1. Stop on NaN/Inf in x or ∇f (NotFinite), on ‖∇f‖ < GradTol
//     (GradientThreshold), or on stagnation when Patience is set.
//  2. Compute the direction with the two-loop recursion over the stored
//     curvature pairs (steepest descent on the first iteration). A
//     non-descent direction from numerical drift falls back to −∇f.
//  3. Backtracking line search along d; an exhausted budget ends the run
//     as LinesearchFailure (non-converged, not an error).
//  4. Push the new curvature pair if sᵀy is sufficiently positive, FIFO
//     evicting beyond capacity m; advance x and ∇f.
//
// Errors are returned only for invalid input: core.ErrNilProblem,
// core.ErrEmptyIterate, or ErrBadOptions. Ordinary non-convergence is a
// Status, never an error.
//
// Internal state is rebuilt on every call: successive calls on one
// configuration are fully independent.
//
// Complexity: O(Memory·len(x)) per iteration plus evaluation cost.
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

	// 2) Per-call state: counters, buffers, empty history, fresh tracker.
	cp := &core.Counted{P: p}
	g := make([]float64, n)
	gNew := make([]float64, n)
	d := make([]float64, n)
	xNew := make([]float64, n)
	hist := newHistory(cfg.Memory, n)
	tracker := core.NewTracker(cfg.Patience, cfg.StagnationTol)

	// 3) Initial evaluation at the caller's guess.
	f := cp.Value(x)
	cp.Gradient(g, x)

	// 4) Main loop. IterationLimit is the status when the cap runs out.
	res.Status = core.IterationLimit
	var slope, fNew float64
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

		// 4b) Search direction via the two-loop recursion.
		hist.direction(d, g)
		slope = floats.Dot(g, d)
		if slope >= 0 {
			// Drifted approximation produced an ascent direction: drop the
			// history and restart from steepest descent.
			hist.reset()
			copy(d, g)
			floats.Scale(-1, d)
			slope = -gNorm * gNorm
		}

		// 4c) Line search. Evaluations route through cp and are counted.
		_, fNew, _, err = linesearch.Backtrack(cp.Value, x, d, xNew, f, slope, &cfg.LineSearch)
		if err != nil {
			res.Status = core.LinesearchFailure

			break
		}

		// 4d) Curvature update and advance.
		cp.Gradient(gNew, xNew)
		hist.push(x, xNew, g, gNew)
		copy(x, xNew)
		copy(g, gNew)
		f = fNew
		res.Iterations++
	}

	// 5) Finalize the report from the last coherent evaluation.
	res.Value = f
	res.GradNorm = floats.Norm(g, 2)
	res.FuncEvals = cp.FuncEvals
	res.GradEvals = cp.GradEvals

	return res, nil
}
