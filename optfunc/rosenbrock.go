package optfunc

// Rosenbrock is the generalized Rosenbrock valley
//
//	f(x) = Σ_{i<n-1} [ 100·(x_{i+1} − x_i²)² + (1 − x_i)² ]
//
// with global minimum 0 at (1, …, 1). The narrow curved valley makes it the
// classic stress test for line searches and curvature approximations.
//
// Rosenbrock deliberately exposes ONLY Value: any solver asking for a
// gradient or Hessian exercises the finite-difference fallback, exactly the
// hard path the derivative plumbing has to survive.
type Rosenbrock struct{}

// Value returns the Rosenbrock objective at x. Requires len(x) ≥ 2.
func (Rosenbrock) Value(x []float64) float64 {
	var s float64
	for i := 0; i+1 < len(x); i++ {
		t1 := x[i+1] - x[i]*x[i]
		t2 := 1 - x[i]
		s += 100*t1*t1 + t2*t2
	}

	return s
}

// RosenbrockGradient writes the analytic Rosenbrock gradient into dst.
// It lives outside the Rosenbrock type on purpose: the type must stay
// value-only so solvers keep hitting the finite-difference path, while
// accuracy tests still need an independent analytic reference.
func RosenbrockGradient(dst, x []float64) {
	n := len(x)
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i+1 < n; i++ {
		t1 := x[i+1] - x[i]*x[i]
		dst[i] += -400*x[i]*t1 - 2*(1-x[i])
		dst[i+1] += 200 * t1
	}
}
