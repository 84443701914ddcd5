package nlcg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/nlcg"
	"github.com/katalvlaran/lvlopt/optfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// residualTol is the acceptance threshold on ‖Ax−b‖ for the quadratic runs.
const residualTol = 1e-4

// TestMinimize_InputValidation covers the error-returning paths.
func TestMinimize_InputValidation(t *testing.T) {
	_, err := nlcg.Minimize(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)

	_, err = nlcg.Minimize(optfunc.Sphere{}, []float64{}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyIterate)

	bad := nlcg.DefaultOptions()
	bad.Variant = nlcg.Variant(42)
	_, err = nlcg.Minimize(optfunc.Sphere{}, []float64{1}, &bad)
	assert.ErrorIs(t, err, nlcg.ErrBadOptions)

	bad = nlcg.DefaultOptions()
	bad.RestartInterval = -1
	_, err = nlcg.Minimize(optfunc.Sphere{}, []float64{1}, &bad)
	assert.ErrorIs(t, err, nlcg.ErrBadOptions)
}

// TestMinimize_Sphere converges on the bowl from an arbitrary start.
func TestMinimize_Sphere(t *testing.T) {
	x := []float64{3, -4, 5}

	res, err := nlcg.Minimize(optfunc.Sphere{}, x, nil)

	require.NoError(t, err)
	assert.Equal(t, core.GradientThreshold, res.Status)
	for i, v := range x {
		assert.InDelta(t, 0, v, 1e-6, "coordinate %d", i)
	}
}

// TestMinimize_RandomQuadratic16 mirrors the classic acceptance run with
// both variants: random 16-dim convex quadratic, seed 100, ≤1000
// iterations, finite output, residual below 1e-4.
func TestMinimize_RandomQuadratic16(t *testing.T) {
	variants := map[string]nlcg.Variant{
		"PolakRibiere":   nlcg.PolakRibiere,
		"FletcherReeves": nlcg.FletcherReeves,
	}
	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(100))
			q := optfunc.NewRandomQuadratic(16, rng)
			x := optfunc.UniformStart(rng, q.Dim(), -1, 1)

			opts := nlcg.DefaultOptions()
			opts.MaxIterations = 1000
			opts.Variant = v

			res, err := nlcg.Minimize(q, x, &opts)

			require.NoError(t, err)
			assert.True(t, core.Finite(x), "no NaN/Inf may appear in x")
			assert.Less(t, q.Residual(x), residualTol,
				"‖Ax−b‖ must drop below 1e-4 (status %v after %d iters)", res.Status, res.Iterations)
		})
	}
}

// TestMinimize_RosenbrockStaysFinite runs the 2-D Rosenbrock from random
// starts; only non-divergence is asserted.
func TestMinimize_RosenbrockStaysFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(100))
	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 1000

	for run := 0; run < 5; run++ {
		x := optfunc.UniformStart(rng, 2, -1, 1)

		res, err := nlcg.Minimize(optfunc.Rosenbrock{}, x, &opts)

		require.NoError(t, err)
		assert.True(t, core.Finite(x), "run %d: x must stay finite, status %v", run, res.Status)
		assert.NotEqual(t, core.NotFinite, res.Status, "run %d", run)
	}
}

// TestMinimize_RestartIntervalOne degrades nlcg to pure steepest descent
// (every iteration restarts); it must still solve a convex quadratic, just
// more slowly.
func TestMinimize_RestartIntervalOne(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	q := optfunc.NewRandomQuadratic(8, rng)
	x := optfunc.UniformStart(rng, 8, -1, 1)

	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 5000
	opts.RestartInterval = 1

	_, err := nlcg.Minimize(q, x, &opts)

	require.NoError(t, err)
	assert.True(t, core.Finite(x))
	assert.Less(t, q.Residual(x), residualTol)
}

// TestMinimize_IdempotentReset solves two unrelated problems back to back
// with one Options value; the second must match a fresh run exactly.
func TestMinimize_IdempotentReset(t *testing.T) {
	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 500

	rngA := rand.New(rand.NewSource(2))
	q := optfunc.NewRandomQuadratic(6, rngA)
	x1 := optfunc.UniformStart(rngA, 6, -1, 1)
	_, err := nlcg.Minimize(q, x1, &opts)
	require.NoError(t, err)

	start := []float64{0.8, -0.6}
	x2 := append([]float64(nil), start...)
	res2, err := nlcg.Minimize(optfunc.Rosenbrock{}, x2, &opts)
	require.NoError(t, err)

	x3 := append([]float64(nil), start...)
	res3, err := nlcg.Minimize(optfunc.Rosenbrock{}, x3, &opts)
	require.NoError(t, err)

	assert.Equal(t, x3, x2, "a prior solve must not influence the next one")
	assert.Equal(t, res3.Iterations, res2.Iterations)
	assert.Equal(t, res3.Status, res2.Status)
}

// TestMinimize_IterationCapIsNormal verifies a tiny budget ends with
// IterationLimit and no error.
func TestMinimize_IterationCapIsNormal(t *testing.T) {
	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 3

	x := []float64{-1.2, 1}
	res, err := nlcg.Minimize(optfunc.Rosenbrock{}, x, &opts)

	require.NoError(t, err)
	assert.Equal(t, core.IterationLimit, res.Status)
	assert.Equal(t, 3, res.Iterations)
	assert.True(t, core.Finite(x))
}

// unbounded is f(x) = −eˣ: descending it has no floor, so the iterate
// races off and the gradient overflows within a few steps.
type unbounded struct{}

func (unbounded) Value(x []float64) float64 { return -math.Exp(x[0]) }

func (unbounded) Gradient(dst, x []float64) { dst[0] = -math.Exp(x[0]) }

// TestMinimize_DivergenceEndsNotFinite verifies a run that overflows stops
// with the NotFinite status instead of iterating on NaN/Inf.
func TestMinimize_DivergenceEndsNotFinite(t *testing.T) {
	x := []float64{1}
	res, err := nlcg.Minimize(unbounded{}, x, nil)

	require.NoError(t, err)
	assert.Equal(t, core.NotFinite, res.Status)
	assert.Less(t, res.Iterations, 10, "the overflow must be caught promptly")
}
