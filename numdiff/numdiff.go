package numdiff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Relative perturbations derived from the double-precision machine
// epsilon ε. Each rule balances truncation against rounding for the
// quantity being differenced: √ε for a central difference of function
// values, ε^(1/3) for differencing a first derivative, ε^(1/4) for a
// second difference of function values.
var (
	sqrtEps  = math.Sqrt(math.Nextafter(1, 2) - 1)
	cbrtEps  = math.Cbrt(math.Nextafter(1, 2) - 1)
	quartEps = math.Sqrt(sqrtEps)
)

// Step returns the finite-difference perturbation for coordinate value xi:
//
//	h = √ε · max(1, |xi|)
//
// The step is always strictly positive.
func Step(xi float64) float64 {
	return sqrtEps * math.Max(1, math.Abs(xi))
}

// HessianStep returns the perturbation used when differencing a gradient:
//
//	h = ε^(1/3) · max(1, |xi|)
//
// The larger step keeps the quotient above the rounding noise the gradient
// itself carries, which matters when that gradient is a finite-difference
// approximation rather than an analytic one.
func HessianStep(xi float64) float64 {
	return cbrtEps * math.Max(1, math.Abs(xi))
}

// Gradient approximates ∇f(x) by central differences and stores it in dst.
//
// For each coordinate i it evaluates f at x ± h_i·e_i, with h_i = Step(x[i]),
// and sets
//
//	dst[i] = (f(x + h_i e_i) − f(x − h_i e_i)) / (2 h_i).
//
// The caller's x is left untouched: perturbations happen on an internal copy.
//
// Cost: exactly 2·len(x) evaluations of f.
//
// Panics if f is nil or len(dst) != len(x).
func Gradient(dst []float64, f func([]float64) float64, x []float64) {
	if f == nil {
		panic("numdiff: nil function")
	}
	if len(dst) != len(x) {
		panic("numdiff: dimension mismatch")
	}

	// Probe on a private copy so f never observes a half-perturbed caller
	// vector (and so concurrent readers of x stay safe).
	xc := make([]float64, len(x))
	copy(xc, x)

	var h, fp, fm float64
	for i := range x {
		h = Step(x[i])

		xc[i] = x[i] + h
		fp = f(xc)

		xc[i] = x[i] - h
		fm = f(xc)

		xc[i] = x[i] // restore before moving to the next coordinate

		dst[i] = (fp - fm) / (2 * h)
	}
}

// Hessian approximates ∇²f(x) by central differencing of a gradient callback
// and stores the symmetrized result in dst.
//
// grad must write the gradient of f at its second argument into its first
// argument; both slices have len(x) elements. Column i of the raw
// approximation is
//
//	(∇f(x + h_i e_i) − ∇f(x − h_i e_i)) / (2 h_i),
//
// with h_i = HessianStep(x[i]), and the final matrix is (H + Hᵀ)/2 so the
// output is exactly symmetric even when the individual columns disagree in
// their last bits.
//
// grad should be an analytic (or otherwise smooth) gradient. When only
// function values are available, use HessianValue instead: differencing a
// gradient that is itself a finite difference amplifies its rounding noise
// beyond any useful accuracy.
//
// Cost: 2·len(x) calls to grad.
//
// Panics if grad is nil, dst is nil, or dst is non-empty with a dimension
// different from len(x). A zero-sized dst is resized to len(x)×len(x).
func Hessian(dst *mat.SymDense, grad func(dst, x []float64), x []float64) {
	if grad == nil {
		panic("numdiff: nil gradient function")
	}
	if dst == nil {
		panic("numdiff: nil destination matrix")
	}
	n := len(x)
	if dst.IsEmpty() {
		dst.ReuseAsSym(n)
	} else if dst.SymmetricDim() != n {
		panic("numdiff: dimension mismatch")
	}

	xc := make([]float64, n)
	copy(xc, x)

	// cols[i] holds the i-th column of the unsymmetrized approximation.
	cols := make([][]float64, n)
	gp := make([]float64, n)
	gm := make([]float64, n)

	var h float64
	for i := 0; i < n; i++ {
		h = HessianStep(x[i])

		xc[i] = x[i] + h
		grad(gp, xc)

		xc[i] = x[i] - h
		grad(gm, xc)

		xc[i] = x[i]

		col := make([]float64, n)
		for j := 0; j < n; j++ {
			col[j] = (gp[j] - gm[j]) / (2 * h)
		}
		cols[i] = col
	}

	// Symmetrize: H_ij = (cols[i][j] + cols[j][i]) / 2.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dst.SetSym(i, j, (cols[i][j]+cols[j][i])/2)
		}
	}
}

// HessianValue approximates ∇²f(x) directly from second differences of f
// and stores the result in dst. It is the right tool when no gradient is
// available at all.
//
// With h_i = ε^(1/4)·max(1, |x_i|), the diagonal uses the three-point rule
//
//	H_ii = (f(x + h_i e_i) − 2 f(x) + f(x − h_i e_i)) / h_i²
//
// and each off-diagonal entry the four-point cross rule
//
//	H_ij = (f(++) − f(+−) − f(−+) + f(−−)) / (4 h_i h_j),
//
// where the signs denote perturbations along e_i and e_j. The output is
// symmetric by construction. The caller's x is left untouched.
//
// Cost: 2n² + 1 evaluations of f for n = len(x).
//
// Panics if f is nil, dst is nil, or dst is non-empty with a dimension
// different from len(x). A zero-sized dst is resized to len(x)×len(x).
func HessianValue(dst *mat.SymDense, f func([]float64) float64, x []float64) {
	if f == nil {
		panic("numdiff: nil function")
	}
	if dst == nil {
		panic("numdiff: nil destination matrix")
	}
	n := len(x)
	if dst.IsEmpty() {
		dst.ReuseAsSym(n)
	} else if dst.SymmetricDim() != n {
		panic("numdiff: dimension mismatch")
	}

	xc := make([]float64, n)
	copy(xc, x)

	h := make([]float64, n)
	for i := range x {
		h[i] = quartEps * math.Max(1, math.Abs(x[i]))
	}

	f0 := f(xc)

	// Diagonal: three-point second differences.
	var fp, fm float64
	for i := 0; i < n; i++ {
		xc[i] = x[i] + h[i]
		fp = f(xc)

		xc[i] = x[i] - h[i]
		fm = f(xc)

		xc[i] = x[i]

		dst.SetSym(i, i, (fp-2*f0+fm)/(h[i]*h[i]))
	}

	// Off-diagonal: four-point cross differences, upper triangle only.
	var fpp, fpm, fmp, fmm float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			xc[i] = x[i] + h[i]
			xc[j] = x[j] + h[j]
			fpp = f(xc)

			xc[j] = x[j] - h[j]
			fpm = f(xc)

			xc[i] = x[i] - h[i]
			fmm = f(xc)

			xc[j] = x[j] + h[j]
			fmp = f(xc)

			xc[i] = x[i]
			xc[j] = x[j]

			dst.SetSym(i, j, (fpp-fpm-fmp+fmm)/(4*h[i]*h[j]))
		}
	}
}
