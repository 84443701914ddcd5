// Package numdiff estimates derivatives of smooth functions by central
// finite differences, for use when analytic gradients or Hessians are
// unavailable or too costly to derive.
//
// 🚀 What is numdiff?
//
//	Given only a scalar objective f : ℝⁿ → ℝ, numdiff approximates:
//	  • the gradient  ∇f(x)       from 2n evaluations of f
//	  • the Hessian   ∇²f(x)      from 2n evaluations of a gradient callback
//	  • the Hessian   ∇²f(x)      from 2n²+1 evaluations of f alone
//
// The perturbation step is chosen per coordinate as
//
//	h_i = εᵖ · max(1, |x_i|)
//
// where ε is the double-precision machine epsilon and the exponent p
// depends on what is being differenced: 1/2 for function values, 1/3 for
// an analytic gradient, 1/4 for second differences of function values.
// Scaling the step with the coordinate magnitude keeps the truncation and
// round-off errors balanced for both tiny and large coordinates (the
// classic scipy rule).
//
// ✨ Key features:
//   - central differences: O(h²) truncation error, ~1e-8 relative accuracy
//     on well-scaled smooth functions
//   - the probe point is an internal copy; the caller's x is never mutated
//   - Hessian output is symmetrized, (H+Hᵀ)/2, so downstream Cholesky
//     factorizations see an exactly symmetric matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/numdiff"
//
//	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }
//	g := make([]float64, 2)
//	numdiff.Gradient(g, f, []float64{1, 2})
//	// g ≈ [2, 3]
//
// Cost:
//
//   - Gradient:     2n calls to f
//   - Hessian:      2n calls to the gradient callback (plus symmetrization)
//   - HessianValue: 2n²+1 calls to f
//
// Dimension mismatches between dst and x panic, mirroring gonum's dense
// vector conventions; there is no silent truncation.
package numdiff
