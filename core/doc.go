// Package core defines the objective contract, outcome types and shared
// convergence policy that every lvlopt solver consumes.
//
// 🚀 What is core?
//
//	The foundation layer of lvlopt:
//		• Problem — the minimal objective contract: a scalar Value(x)
//		• Gradienter / Hessianer — optional analytic-derivative capabilities
//		• Gradient / Hessian — capability-aware evaluation with automatic
//		  central finite-difference fallback (via lvlopt/numdiff)
//		• Status / Result — deterministic, inspectable solve outcomes
//		• Tracker — relative-improvement stagnation detector
//		• Finite — the shared NaN/Inf guard
//
// ✨ Why a capability split?
//
//   - Solvers stay decoupled from how derivatives are produced: they call
//     core.Gradient and get analytic derivatives when the problem provides
//     them, finite differences when it does not.
//   - A finite-difference gradient costs 2n Value calls and a
//     finite-difference Hessian costs 2n gradient evaluations; problems on
//     the hot path should implement Gradienter (and Hessianer for Newton).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/core"
//
//	type bowl struct{}
//
//	func (bowl) Value(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }
//
//	g := make([]float64, 2)
//	core.Gradient(g, bowl{}, []float64{3, -4})
//	// g ≈ [6, -8] via central differences
//
// Solvers report how a run ended through Result.Status:
//
//   - GradientThreshold — ‖∇f‖ dropped below the tolerance (converged)
//   - IterationLimit    — the iteration cap was reached (normal for hard problems)
//   - LinesearchFailure — no acceptable step existed within the backtrack budget
//   - Stagnation        — the objective stopped improving (Tracker tripped)
//   - NotFinite         — NaN/Inf appeared in the iterate or gradient
//
// Only invalid inputs (nil problem, empty iterate) surface as errors;
// ordinary non-convergence never does.
package core
