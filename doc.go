// Package lvlopt is your in-memory toolbox for unconstrained nonlinear
// minimization — from finite-difference plumbing to quasi-Newton, conjugate
// gradient and damped Newton solvers.
//
// 🚀 What is lvlopt?
//
//	A modern, allocation-conscious library that brings together:
//		• Objective contract: value / gradient / Hessian, with automatic
//		  central finite-difference fallback for missing derivatives
//		• Line search: backtracking with the Armijo sufficient-decrease rule
//		• L-BFGS: limited-memory quasi-Newton via the two-loop recursion
//		• Nonlinear CG: Polak–Ribière / Fletcher–Reeves with safe restarts
//		• Newton: dense Cholesky solve with Levenberg-style damping
//		• Shared convergence policy: gradient tolerance, iteration caps,
//		  stagnation tracking and NaN/Inf guards
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every solver resets its state per call,
//     never loops forever, never hides divergence
//   - Pure Go – no cgo; dense numerics via gonum (mat, floats)
//   - Extensible – any type with a Value method is a Problem; add analytic
//     derivatives only where they pay off
//
// Under the hood, everything is organized in small subpackages:
//
//	core/       — Problem contract, Status/Result, stagnation Tracker
//	numdiff/    — central finite differences for gradients & Hessians
//	linesearch/ — backtracking-Armijo step selection
//	lbfgs/      — limited-memory quasi-Newton solver
//	nlcg/       — nonlinear conjugate gradient solver
//	newton/     — damped Newton solver
//	optfunc/    — classic benchmark objectives (Sphere, Rosenbrock, quadratics)
//
// Quick sketch:
//
//	    x₀ ──► evaluate f, ∇f ──► direction d ──► line search α ──► x₀+αd
//	            ▲                                                   │
//	            └───────────── until ‖∇f‖ < tol ◄───────────────────┘
//
// Dive into README.md for full examples and a feature matrix.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
