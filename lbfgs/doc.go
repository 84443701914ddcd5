// Package lbfgs implements limited-memory BFGS, a quasi-Newton method for
// unconstrained minimization of smooth functions.
//
// 🚀 What is L-BFGS?
//
//	Instead of storing a dense n×n inverse-Hessian approximation like full
//	BFGS, L-BFGS keeps only the last m curvature pairs
//
//	  s_k = x_{k+1} − x_k,   y_k = ∇f_{k+1} − ∇f_k
//
//	and applies the implicit approximation to the gradient with the
//	two-loop recursion, at O(m·n) cost per iteration. The oldest pair is
//	evicted FIFO once the history is full, so memory stays bounded at m
//	pairs no matter how long the run.
//
// ✨ Key features:
//   - ring-buffer curvature history, capacity m, no per-iteration allocation
//   - initial Hessian scaling γ = (sᵀy)/(yᵀy) from the newest pair
//   - curvature guard: a pair with insufficient sᵀy is skipped, never
//     allowed to corrupt the approximation
//   - backtracking-Armijo line search; an unmet backtrack budget ends the
//     run as non-converged instead of crashing
//   - NaN/Inf guard on iterate and gradient every iteration
//   - per-call state: every Minimize starts from an empty history
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/lbfgs"
//
//	opts := lbfgs.DefaultOptions()
//	opts.MaxIterations = 1000
//	res, err := lbfgs.Minimize(problem, x, &opts)
//	if err != nil {
//	  // invalid input (nil problem, empty x, bad options)
//	}
//	// x now holds the best point found; res.Status says how the run ended.
//
// Complexity:
//
//   - Time:  O(m·n) per iteration plus objective/gradient evaluations
//   - Space: O(m·n) for the curvature history
//
// On highly curved narrow valleys (Rosenbrock-style) the Armijo-only step
// acceptance can stall short of tight tolerances; treat tight convergence
// there as not guaranteed and judge runs by finiteness and residual trends.
package lbfgs
