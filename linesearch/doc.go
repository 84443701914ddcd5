// Package linesearch finds step lengths along a descent direction that
// satisfy the Armijo sufficient-decrease condition, using backtracking.
//
// 🚀 What is a line search?
//
//	A solver hands over a point x, a direction d and the local slope
//	g·d < 0; the line search picks α > 0 such that
//
//	  f(x + α·d) ≤ f(x) + c₁·α·(g·d)
//
//	i.e. the step achieves at least a c₁ fraction of the decrease promised
//	by the first-order model. Backtracking starts at α = InitialStep and
//	multiplies by Contraction until the condition holds.
//
// ✨ Key features:
//   - never loops forever: a backtrack budget and a minimum step size
//     bound the search, and exhaustion is an ordinary recoverable error
//   - rejects ascent directions up front (ErrNotDescent), so callers can
//     reset their direction instead of stepping uphill
//   - NaN/Inf trial values simply fail the Armijo test and shrink further,
//     which walks the step back inside the objective's finite region
//   - zero allocations per call: the caller provides the trial buffer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/linesearch"
//
//	opts := linesearch.DefaultOptions()
//	alpha, fNew, evals, err := linesearch.Backtrack(f, x, d, xNew, f0, slope, &opts)
//	if err != nil {
//	  // ErrNotDescent → reset direction; ErrNoDecrease → stop non-converged
//	}
//
// Complexity:
//
//   - At most MaxBacktracks objective evaluations per call.
//
// The Armijo-only rule deliberately skips the curvature (Wolfe) condition:
// it needs no gradient at trial points, which keeps finite-difference
// objectives affordable. Solvers that rely on curvature information (L-BFGS)
// compensate by filtering their history updates instead.
package linesearch
