// Package nlcg implements the nonlinear conjugate gradient method for
// unconstrained minimization of smooth functions.
//
// 🚀 What is nonlinear CG?
//
//	The lightest gradient-based solver that still beats steepest descent:
//	it keeps exactly one previous gradient and one previous direction, and
//	combines them each iteration as
//
//	  d_{k+1} = −∇f_{k+1} + β_k·d_k,   d_0 = −∇f_0
//
//	where the conjugacy coefficient β_k is computed from consecutive
//	gradients (Polak–Ribière by default, Fletcher–Reeves optionally).
//	Memory use is O(n) — no history, no matrices.
//
// ✨ Key features:
//   - β clamped at zero: a negative coefficient resets the direction to
//     steepest descent instead of poisoning conjugacy
//   - periodic restart every RestartInterval iterations (dimension n by
//     default) to bound the loss of conjugacy on nonquadratic objectives
//   - a drifted non-descent direction also forces a restart
//   - backtracking-Armijo line search; an exhausted budget ends the run
//     as non-converged instead of crashing
//   - NaN/Inf guard on iterate and gradient every iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/nlcg"
//
//	opts := nlcg.DefaultOptions()
//	opts.MaxIterations = 1000
//	opts.Variant = nlcg.FletcherReeves
//	res, err := nlcg.Minimize(problem, x, &opts)
//
// Complexity:
//
//   - Time:  O(n) per iteration plus objective/gradient evaluations
//   - Space: O(n) — previous gradient and direction only
//
// Prefer L-BFGS when memory for a few curvature pairs is available; prefer
// nlcg when even that is too much or gradients are very cheap.
package nlcg
