package linesearch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/linesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad1D evaluates f(x)=x² on a 1-vector.
func quad1D(x []float64) float64 { return x[0] * x[0] }

// TestBacktrack_AcceptsFullStep verifies a full step that already satisfies
// sufficient decrease is accepted without shrinking.
func TestBacktrack_AcceptsFullStep(t *testing.T) {
	x := []float64{1}
	d := []float64{-1} // step to the exact minimum of x²
	xNew := make([]float64, 1)
	f0 := quad1D(x)
	slope := 2 * x[0] * d[0] // g·d = -2

	alpha, fNew, evals, err := linesearch.Backtrack(quad1D, x, d, xNew, f0, slope, nil)

	require.NoError(t, err)
	assert.Equal(t, 1.0, alpha, "full step must be accepted")
	assert.Equal(t, 1, evals, "exactly one trial evaluation")
	assert.Equal(t, 0.0, fNew)
	assert.Equal(t, 0.0, xNew[0])
}

// TestBacktrack_ShrinksOvershoot verifies backtracking kicks in when the
// unit step overshoots so badly that it increases f.
func TestBacktrack_ShrinksOvershoot(t *testing.T) {
	x := []float64{1}
	d := []float64{-4} // overshoots the minimum: f(1-4) = 9 > f(1)
	xNew := make([]float64, 1)
	f0 := quad1D(x)
	slope := 2 * x[0] * d[0]

	alpha, fNew, evals, err := linesearch.Backtrack(quad1D, x, d, xNew, f0, slope, nil)

	require.NoError(t, err)
	assert.Less(t, alpha, 1.0, "step must have been contracted")
	assert.Greater(t, evals, 1)
	assert.Less(t, fNew, f0, "accepted step must decrease f")
	assert.Equal(t, x[0]+alpha*d[0], xNew[0], "xNew = x + α·d")
}

// TestBacktrack_RejectsAscent verifies the non-descent edge case: a
// non-negative slope is refused before any evaluation.
func TestBacktrack_RejectsAscent(t *testing.T) {
	x := []float64{1}
	d := []float64{1} // uphill
	xNew := []float64{0}

	_, _, evals, err := linesearch.Backtrack(quad1D, x, d, xNew, quad1D(x), 2.0, nil)

	assert.ErrorIs(t, err, linesearch.ErrNotDescent)
	assert.Zero(t, evals, "no evaluation may happen for an ascent direction")
	assert.Equal(t, 0.0, xNew[0], "xNew must be untouched")
}

// TestBacktrack_BudgetExhaustion verifies a hostile objective (no decrease
// anywhere) terminates with ErrNoDecrease instead of looping.
func TestBacktrack_BudgetExhaustion(t *testing.T) {
	// f grows in every direction from x=0 except staying put, and we lie
	// about the slope, so no step can satisfy Armijo.
	f := func(x []float64) float64 { return math.Abs(x[0]) + 1 }
	x := []float64{0}
	d := []float64{1}
	xNew := make([]float64, 1)
	opts := linesearch.DefaultOptions()
	opts.MaxBacktracks = 10

	_, _, evals, err := linesearch.Backtrack(f, x, d, xNew, 1.0, -1.0, &opts)

	assert.ErrorIs(t, err, linesearch.ErrNoDecrease)
	assert.Equal(t, 10, evals, "budget must be fully spent, then stop")
}

// TestBacktrack_NaNTrialKeepsShrinking verifies NaN trial values fail the
// Armijo test and the search walks back into the finite region.
func TestBacktrack_NaNTrialKeepsShrinking(t *testing.T) {
	// f is NaN beyond |x| > 0.3, a parabola inside.
	f := func(x []float64) float64 {
		if math.Abs(x[0]) > 0.3 {
			return math.NaN()
		}

		return x[0] * x[0]
	}
	x := []float64{0.2}
	d := []float64{-1}
	xNew := make([]float64, 1)

	alpha, fNew, _, err := linesearch.Backtrack(f, x, d, xNew, f(x), 2*0.2*-1, nil)

	require.NoError(t, err, "search must recover once trials re-enter the finite region")
	assert.False(t, math.IsNaN(fNew))
	assert.Less(t, alpha, 1.0)
}

// TestBacktrack_OptionValidation verifies out-of-range options are refused.
func TestBacktrack_OptionValidation(t *testing.T) {
	x, d, xNew := []float64{1}, []float64{-1}, make([]float64, 1)

	bad := linesearch.DefaultOptions()
	bad.Contraction = 1.5
	_, _, _, err := linesearch.Backtrack(quad1D, x, d, xNew, 1, -2, &bad)
	assert.ErrorIs(t, err, linesearch.ErrBadOptions)

	bad = linesearch.DefaultOptions()
	bad.SufficientDecrease = 0
	_, _, _, err = linesearch.Backtrack(quad1D, x, d, xNew, 1, -2, &bad)
	assert.ErrorIs(t, err, linesearch.ErrBadOptions)

	bad = linesearch.DefaultOptions()
	bad.MaxBacktracks = 0
	_, _, _, err = linesearch.Backtrack(quad1D, x, d, xNew, 1, -2, &bad)
	assert.ErrorIs(t, err, linesearch.ErrBadOptions)
}

// TestBacktrack_DimensionMismatch verifies mismatched buffers are refused.
func TestBacktrack_DimensionMismatch(t *testing.T) {
	_, _, _, err := linesearch.Backtrack(quad1D, []float64{1, 2}, []float64{-1}, make([]float64, 2), 1, -2, nil)
	assert.ErrorIs(t, err, linesearch.ErrBadOptions)
}

// TestArmijoMet pins the raw condition, including its NaN behavior.
func TestArmijoMet(t *testing.T) {
	assert.True(t, linesearch.ArmijoMet(0.9, 1.0, -1.0, 0.5, 1e-4))
	assert.False(t, linesearch.ArmijoMet(1.1, 1.0, -1.0, 0.5, 1e-4))
	assert.False(t, linesearch.ArmijoMet(math.NaN(), 1.0, -1.0, 0.5, 1e-4), "NaN never satisfies Armijo")
}
