// Package optfunc provides classic benchmark objectives for exercising the
// lvlopt solvers: a convex quadratic family, the Rosenbrock valley and the
// sphere bowl.
//
// 🚀 What is optfunc?
//
//	A small menagerie of objectives with known minimizers, each chosen to
//	stress a different part of a solver:
//	  • Quadratic  — f(x)=½‖Ax−b‖², strictly convex for full-rank A. The
//	    exact minimizer solves Ax=b, so residuals are directly checkable;
//	    a second-order method must finish it in one step.
//	  • Rosenbrock — the banana valley, global minimum at (1,…,1) with
//	    value 0. Deliberately exposes ONLY Value, so every derivative a
//	    solver requests goes through the finite-difference fallback.
//	  • Sphere     — f(x)=‖x‖², the friendliest possible bowl, with
//	    analytic gradient and Hessian for fast smoke tests.
//
// ✨ Key features:
//   - NewRandomQuadratic builds a well-conditioned symmetric positive
//     definite instance from a seeded source, so tests stay deterministic
//   - Quadratic.Residual reports ‖Ax−b‖ — the same success metric the
//     solvers' acceptance tests assert on
//   - UniformStart draws reproducible starting boxes for solver runs
//
// ⚙️ Usage:
//
//	import (
//	  "math/rand"
//
//	  "github.com/katalvlaran/lvlopt/lbfgs"
//	  "github.com/katalvlaran/lvlopt/optfunc"
//	)
//
//	rng := rand.New(rand.NewSource(100))
//	q := optfunc.NewRandomQuadratic(16, rng)
//	x := optfunc.UniformStart(rng, q.Dim(), -1, 1)
//	lbfgs.Minimize(q, x, nil)
//	// q.Residual(x) should now be tiny
//
// All objectives are pure functions of their argument and safe for
// concurrent evaluation.
package optfunc
