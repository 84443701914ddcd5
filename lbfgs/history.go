package lbfgs

import "gonum.org/v1/gonum/floats"

// minCurvature is the relative floor for accepting a curvature pair:
// sᵀy must exceed minCurvature·‖s‖·‖y‖, otherwise the pair would make the
// inverse-Hessian approximation indefinite and is skipped.
const minCurvature = 1e-10

// history is the bounded FIFO of curvature pairs, stored as a ring buffer
// of fixed capacity m. All vectors are preallocated once; push and
// direction never allocate.
type history struct {
	m, n int

	s   [][]float64 // step differences, ring-indexed
	y   [][]float64 // gradient differences, ring-indexed
	rho []float64   // 1/(sᵀy) per pair
	a   []float64   // two-loop scratch

	count  int // number of valid pairs, 0..m
	oldest int // ring index of the oldest valid pair
}

// newHistory allocates an empty history of capacity m for dimension n.
func newHistory(m, n int) *history {
	h := &history{
		m:   m,
		n:   n,
		s:   make([][]float64, m),
		y:   make([][]float64, m),
		rho: make([]float64, m),
		a:   make([]float64, m),
	}
	for i := 0; i < m; i++ {
		h.s[i] = make([]float64, n)
		h.y[i] = make([]float64, n)
	}

	return h
}

// len returns the number of stored pairs, never exceeding capacity.
func (h *history) len() int { return h.count }

// reset drops all stored pairs.
func (h *history) reset() {
	h.count = 0
	h.oldest = 0
}

// push records the pair s = xNew−x, y = gNew−g if its curvature is
// sufficiently positive, evicting the oldest pair when full. Reports
// whether the pair was stored.
func (h *history) push(x, xNew, g, gNew []float64) bool {
	// Target slot: the next free one, which at capacity wraps onto the
	// oldest pair's slot.
	idx := (h.oldest + h.count) % h.m

	s, y := h.s[idx], h.y[idx]
	floats.SubTo(s, xNew, x)
	floats.SubTo(y, gNew, g)

	// Curvature guard: skip pairs that cannot keep the approximation SPD.
	sDotY := floats.Dot(s, y)
	if sDotY <= minCurvature*floats.Norm(s, 2)*floats.Norm(y, 2) {
		return false
	}

	h.rho[idx] = 1 / sDotY
	if h.count == h.m {
		h.oldest = (h.oldest + 1) % h.m // FIFO eviction
	} else {
		h.count++
	}

	return true
}

// direction computes d = −H·g, where H is the implicit inverse-Hessian
// approximation, via the two-loop recursion (Nocedal & Wright, Alg. 7.4).
// With an empty history it returns steepest descent, d = −g.
func (h *history) direction(d, g []float64) {
	copy(d, g)

	if h.count == 0 {
		floats.Scale(-1, d)

		return
	}

	// First loop: newest pair back to oldest.
	var idx int
	for k := h.count - 1; k >= 0; k-- {
		idx = (h.oldest + k) % h.m
		h.a[idx] = h.rho[idx] * floats.Dot(h.s[idx], d)
		floats.AddScaled(d, -h.a[idx], h.y[idx])
	}

	// Initial Hessian scaling from the newest pair: γ = (sᵀy)/(yᵀy).
	newest := (h.oldest + h.count - 1) % h.m
	gamma := 1 / (h.rho[newest] * floats.Dot(h.y[newest], h.y[newest]))
	floats.Scale(gamma, d)

	// Second loop: oldest pair forward to newest.
	var beta float64
	for k := 0; k < h.count; k++ {
		idx = (h.oldest + k) % h.m
		beta = h.rho[idx] * floats.Dot(h.y[idx], d)
		floats.AddScaled(d, h.a[idx]-beta, h.s[idx])
	}

	// d currently holds H·g; flip for a minimization direction.
	floats.Scale(-1, d)
}
