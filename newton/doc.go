// Package newton implements a damped Newton method for unconstrained
// minimization with dense Hessians.
//
// 🚀 What is damped Newton?
//
//	Each iteration solves the linear system
//
//	  H·d = −∇f
//
//	for the search direction d via a dense Cholesky factorization of the
//	Hessian H. Near a strict minimizer the unit step is accepted and
//	convergence is quadratic; on an exactly quadratic positive-definite
//	objective the very first step lands on the minimizer.
//
// ✨ Key features:
//   - Levenberg-style safeguard for indefinite curvature: when Cholesky
//     fails, successively larger multiples τ·I are added to H until the
//     factorization succeeds (Nocedal & Wright, Algorithm 3.3), with τ
//     warm-started across iterations
//   - fallback to steepest descent when regularization is disabled or the
//     modification budget runs out — indefiniteness is never an error
//   - analytic Hessians used when the problem provides them, finite
//     differences otherwise (at 2n gradient evaluations per Hessian)
//   - backtracking-Armijo line search starting at the full Newton step
//   - NaN/Inf guard on iterate and gradient every iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/newton"
//
//	opts := newton.DefaultOptions()
//	opts.MaxIterations = 1 // enough for an exact quadratic
//	res, err := newton.Minimize(problem, x, &opts)
//
// Complexity:
//
//   - Time:  O(n³) per iteration for the factorization, plus evaluations
//   - Space: O(n²) for the Hessian copy
//
// Prefer lbfgs or nlcg when the Hessian is unavailable or n is large
// enough that cubic factorizations hurt.
package newton
