package newton

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// minTau is the smallest nonzero regularization ever applied.
const minTau = 1e-3

// solver bundles the per-call dense workspace of one Minimize run.
type solver struct {
	cfg Options

	hess mat.SymDense // Hessian evaluated at the iterate.
	diag []float64    // Unmodified diagonal of hess.
	chol mat.Cholesky // Factorization workspace.
	tau  float64      // Current regularization, warm-started across iterations.
}

// direction computes the (possibly damped) Newton direction d solving
// (H + τI)·d = −g, following Algorithm 3.3 (Cholesky with added multiple
// of the identity) from Nocedal & Wright. When the Hessian cannot be made
// positive definite within the modification budget — or regularization is
// disabled — it falls back to steepest descent.
func (s *solver) direction(d, g []float64) {
	n := len(g)
	dVec := mat.NewVecDense(n, d)
	gVec := mat.NewVecDense(n, g)

	// 1) Keep the pristine diagonal; trials overwrite it in place.
	for i := 0; i < n; i++ {
		s.diag[i] = s.hess.At(i, i)
	}

	// 2) Cheap definiteness hint: a positive smallest diagonal entry means
	//    the unmodified Hessian may be positive definite, so try τ = 0
	//    first. Otherwise start from the previous τ, or guess one barely
	//    lifting the most negative diagonal entry.
	minA := s.diag[0]
	for i := 1; i < n; i++ {
		if s.diag[i] < minA {
			minA = s.diag[i]
		}
	}
	trials := s.cfg.MaxModifications
	if minA > 0 {
		s.tau = 0
	} else if s.tau == 0 {
		s.tau = -minA + minTau
	}
	if !s.cfg.Regularize {
		// Single attempt at the pure Newton system, then steepest descent.
		s.tau = 0
		trials = 1
	}

	// 3) Trial factorizations with growing τ.
	for k := 0; k < trials; k++ {
		if s.tau != 0 {
			for i := 0; i < n; i++ {
				s.hess.SetSym(i, i, s.diag[i]+s.tau)
			}
		}
		if s.chol.Factorize(&s.hess) {
			// d = −(H+τI)⁻¹·g, solved in place on d's backing array.
			if err := s.chol.SolveVecTo(dVec, gVec); err == nil {
				dVec.ScaleVec(-1, dVec)

				return
			}
		}
		s.tau = math.Max(s.cfg.Increase*s.tau, minTau)
	}

	// 4) No usable factorization: steepest descent.
	copy(d, g)
	floats.Scale(-1, d)
}

// Minimize drives x toward a stationary point of p with a damped Newton
// method, mutating x in place. The returned Result reports how the run
// ended; x always holds the last iterate reached.
//
// Per iteration:
//  1. Stop on NaN/Inf (NotFinite), ‖∇f‖ < GradTol (GradientThreshold), or
//     stagnation when Patience is set.
//  2. Evaluate the Hessian (analytic or finite-difference) and solve
//     H·d = −∇f by Cholesky, regularizing indefinite curvature with τ·I
//     or falling back to −∇f.
//  3. Backtracking line search along d starting at the full Newton step;
//     an exhausted budget ends the run as LinesearchFailure.
//  4. Advance x and ∇f.
//
// On an exactly quadratic positive-definite objective the first Newton
// step solves the problem: MaxIterations = 1 suffices.
//
// Errors are returned only for invalid input (core.ErrNilProblem,
// core.ErrEmptyIterate, ErrBadOptions); non-convergence is a Status.
//
// Complexity: O(n³) per iteration for the factorization plus evaluation
// cost; O(n²) space for the Hessian.
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

	// 2) Per-call state and workspace.
	cp := &core.Counted{P: p}
	g := make([]float64, n)
	d := make([]float64, n)
	xNew := make([]float64, n)
	tracker := core.NewTracker(cfg.Patience, cfg.StagnationTol)
	s := &solver{cfg: cfg, diag: make([]float64, n)}
	s.hess.ReuseAsSym(n)

	// 3) Initial evaluation.
	f := cp.Value(x)
	cp.Gradient(g, x)

	// 4) Main loop.
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

		// 4b) Newton system for the direction.
		cp.Hessian(&s.hess, x)
		s.direction(d, g)
		slope = floats.Dot(g, d)
		if slope >= 0 {
			// Damped solve still produced a non-descent direction
			// (extreme ill-conditioning): take steepest descent.
			copy(d, g)
			floats.Scale(-1, d)
			slope = -gNorm * gNorm
		}

		// 4c) Line search from the full Newton step.
		_, fNew, _, err = linesearch.Backtrack(cp.Value, x, d, xNew, f, slope, &cfg.LineSearch)
		if err != nil {
			res.Status = core.LinesearchFailure

			break
		}

		// 4d) Advance.
		cp.Gradient(g, xNew)
		copy(x, xNew)
		f = fNew
		res.Iterations++
	}

	// 5) Finalize the report.
	res.Value = f
	res.GradNorm = floats.Norm(g, 2)
	res.FuncEvals = cp.FuncEvals
	res.GradEvals = cp.GradEvals

	return res, nil
}
