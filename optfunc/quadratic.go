package optfunc

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for quadratic construction.
var (
	// ErrNonSquare indicates the supplied system matrix is not square.
	ErrNonSquare = errors.New("optfunc: system matrix must be square")

	// ErrDimMismatch indicates the right-hand side length does not match
	// the matrix dimension.
	ErrDimMismatch = errors.New("optfunc: right-hand side dimension mismatch")
)

// Quadratic is the convex objective
//
//	f(x) = ½‖Ax − b‖²
//
// with gradient ∇f(x) = Aᵀ(Ax−b) and constant Hessian AᵀA. For a full-rank
// A the unique minimizer is the solution of Ax = b, which makes the residual
// ‖Ax−b‖ a direct success metric for any solver.
//
// Quadratic implements core.Problem, core.Gradienter and core.Hessianer.
type Quadratic struct {
	a *mat.Dense
	b *mat.VecDense
	n int
}

// NewQuadratic builds the objective ½‖Ax−b‖² from a square matrix a and a
// right-hand side b of matching dimension.
func NewQuadratic(a *mat.Dense, b *mat.VecDense) (*Quadratic, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if b.Len() != r {
		return nil, ErrDimMismatch
	}

	return &Quadratic{a: a, b: b, n: r}, nil
}

// NewRandomQuadratic builds a well-conditioned dim×dim instance from rng:
// A = MᵀM/dim + I with M uniform in [-1,1), which is symmetric positive
// definite with eigenvalues ≥ 1, and b uniform in [-1,1). Deterministic for
// a seeded rng.
func NewRandomQuadratic(dim int, rng *rand.Rand) *Quadratic {
	m := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			m.Set(i, j, 2*rng.Float64()-1)
		}
	}

	a := mat.NewDense(dim, dim, nil)
	a.Mul(m.T(), m)
	a.Scale(1/float64(dim), a)
	for i := 0; i < dim; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}

	b := mat.NewVecDense(dim, nil)
	for i := 0; i < dim; i++ {
		b.SetVec(i, 2*rng.Float64()-1)
	}

	q, _ := NewQuadratic(a, b) // construction above is square by design
	return q
}

// Dim returns the problem dimension.
func (q *Quadratic) Dim() int { return q.n }

// residual computes r = Ax − b into a fresh vector.
func (q *Quadratic) residual(x []float64) *mat.VecDense {
	xv := mat.NewVecDense(q.n, x)
	r := mat.NewVecDense(q.n, nil)
	r.MulVec(q.a, xv)
	r.SubVec(r, q.b)

	return r
}

// Value returns ½‖Ax−b‖².
func (q *Quadratic) Value(x []float64) float64 {
	r := q.residual(x)

	return 0.5 * mat.Dot(r, r)
}

// Gradient writes Aᵀ(Ax−b) into dst.
func (q *Quadratic) Gradient(dst, x []float64) {
	r := q.residual(x)
	g := mat.NewVecDense(q.n, dst)
	g.MulVec(q.a.T(), r)
}

// Hessian writes the constant AᵀA into dst.
func (q *Quadratic) Hessian(dst *mat.SymDense, x []float64) {
	if dst.IsEmpty() {
		dst.ReuseAsSym(q.n)
	}

	var ata mat.Dense
	ata.Mul(q.a.T(), q.a)
	for i := 0; i < q.n; i++ {
		for j := i; j < q.n; j++ {
			dst.SetSym(i, j, ata.At(i, j))
		}
	}
}

// Residual returns ‖Ax−b‖, the distance of x from solving the system.
func (q *Quadratic) Residual(x []float64) float64 {
	return mat.Norm(q.residual(x), 2)
}

// UniformStart draws a dim-dimensional starting point with every coordinate
// uniform in [lo, hi). Deterministic for a seeded rng.
func UniformStart(rng *rand.Rand, dim int, lo, hi float64) []float64 {
	x := make([]float64, dim)
	for i := range x {
		x[i] = lo + (hi-lo)*rng.Float64()
	}

	return x
}
