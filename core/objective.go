package core

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/numdiff"
)

// Gradient writes ∇f(x) for problem p into dst.
//
// If p implements Gradienter the analytic gradient is used; otherwise the
// gradient is approximated by central finite differences at a cost of
// 2·len(x) Value calls (see lvlopt/numdiff).
func Gradient(dst []float64, p Problem, x []float64) {
	if g, ok := p.(Gradienter); ok {
		g.Gradient(dst, x)

		return
	}
	numdiff.Gradient(dst, p.Value, x)
}

// Hessian writes ∇²f(x) for problem p into dst.
//
// If p implements Hessianer the analytic Hessian is used. With only a
// Gradienter the Hessian comes from central differencing of the analytic
// gradient, costing 2·len(x) gradient evaluations. A value-only problem
// uses second differences of Value directly (2·len(x)² + 1 evaluations):
// differencing a finite-difference gradient would drown the cross terms
// in rounding noise.
func Hessian(dst *mat.SymDense, p Problem, x []float64) {
	if h, ok := p.(Hessianer); ok {
		h.Hessian(dst, x)

		return
	}
	if g, ok := p.(Gradienter); ok {
		numdiff.Hessian(dst, g.Gradient, x)

		return
	}
	numdiff.HessianValue(dst, p.Value, x)
}

// Counted wraps a Problem and counts every evaluation flowing through it,
// finite-difference probes included. Solvers use it internally to fill
// Result.FuncEvals and Result.GradEvals; it is exported so callers can
// instrument objectives the same way.
//
// Counted implements Problem, Gradienter and Hessianer regardless of which
// capabilities the wrapped problem provides, falling back to finite
// differences exactly like the package-level Gradient and Hessian.
type Counted struct {
	// P is the wrapped problem.
	P Problem

	// FuncEvals is the number of Value calls observed so far.
	FuncEvals int

	// GradEvals is the number of gradient evaluations observed so far.
	GradEvals int
}

// Value evaluates the wrapped objective and bumps FuncEvals.
func (c *Counted) Value(x []float64) float64 {
	c.FuncEvals++

	return c.P.Value(x)
}

// Gradient evaluates the wrapped gradient (analytic or finite-difference)
// and bumps GradEvals. Finite-difference probes route through c.Value, so
// their cost lands in FuncEvals as well.
func (c *Counted) Gradient(dst, x []float64) {
	c.GradEvals++
	if g, ok := c.P.(Gradienter); ok {
		g.Gradient(dst, x)

		return
	}
	numdiff.Gradient(dst, c.Value, x)
}

// Hessian evaluates the wrapped Hessian with the same capability dispatch
// as the package-level Hessian. The gradient-differencing path routes
// through c.Gradient so its cost lands in GradEvals; the value-only path
// routes through c.Value and lands in FuncEvals.
func (c *Counted) Hessian(dst *mat.SymDense, x []float64) {
	if h, ok := c.P.(Hessianer); ok {
		h.Hessian(dst, x)

		return
	}
	if _, ok := c.P.(Gradienter); ok {
		numdiff.Hessian(dst, c.Gradient, x)

		return
	}
	numdiff.HessianValue(dst, c.Value, x)
}

// Finite reports whether every component of x is a finite number.
// Solvers call this after each update; callers should call it on the final
// iterate whenever Result.Status is NotFinite is possible.
func Finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
