package optfunc

import "gonum.org/v1/gonum/mat"

// Sphere is the bowl f(x) = ‖x‖² with minimum 0 at the origin. It carries
// analytic gradient 2x and Hessian 2I, making it the cheapest smoke test
// for the analytic-derivative paths.
type Sphere struct{}

// Value returns ‖x‖².
func (Sphere) Value(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}

	return s
}

// Gradient writes 2x into dst.
func (Sphere) Gradient(dst, x []float64) {
	for i, v := range x {
		dst[i] = 2 * v
	}
}

// Hessian writes 2I into dst.
func (Sphere) Hessian(dst *mat.SymDense, x []float64) {
	n := len(x)
	if dst.IsEmpty() {
		dst.ReuseAsSym(n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := 0.0
			if i == j {
				v = 2
			}
			dst.SetSym(i, j, v)
		}
	}
}
