// Package newton defines configuration options and sentinel errors for the
// damped Newton solver.
//
// Errors (sentinel):
//
//	– ErrBadOptions if an option field is outside its valid range.
//	– core.ErrNilProblem / core.ErrEmptyIterate for invalid Minimize input.
package newton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// ErrBadOptions indicates an Options field is outside its valid range.
var ErrBadOptions = errors.New("newton: invalid options")

// Default option values.
const (
	// DefaultMaxIterations caps the outer loop; second-order convergence
	// rarely needs more than a few dozen iterations.
	DefaultMaxIterations = 100

	// DefaultIncrease is the growth factor for the regularization τ.
	DefaultIncrease = 5

	// DefaultMaxModifications bounds the trial factorizations per iteration.
	DefaultMaxModifications = 20
)

// Options configures Minimize.
//
// MaxIterations    – outer-iteration cap (≥ 1); reaching it is normal.
// GradTol          – gradient-norm convergence threshold (> 0).
// Regularize       – when true (the default), an indefinite Hessian is
//
//	repaired by adding τ·I with growing τ; when false the
//	solver falls straight back to steepest descent.
//
// Increase         – growth factor for τ between trial factorizations (> 1).
// MaxModifications – trial-factorization budget per iteration (≥ 1).
// Patience         – consecutive non-improving iterations tolerated before
//
//	stopping as Stagnation; 0 disables.
//
// StagnationTol    – relative improvement threshold (see core.Tracker).
// LineSearch       – backtracking-Armijo parameters; InitialStep 1 lets an
//
//	acceptable full Newton step pass untouched.
type Options struct {
	MaxIterations    int
	GradTol          float64
	Regularize       bool
	Increase         float64
	MaxModifications int
	Patience         int
	StagnationTol    float64
	LineSearch       linesearch.Options
}

// DefaultOptions returns Options with package defaults: 100 iterations,
// gradient tolerance 1e-10, regularization on with growth factor 5, and the
// linesearch package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:    DefaultMaxIterations,
		GradTol:          core.DefaultGradTol,
		Regularize:       true,
		Increase:         DefaultIncrease,
		MaxModifications: DefaultMaxModifications,
		LineSearch:       linesearch.DefaultOptions(),
	}
}

// Validate checks every field against its documented range, returning an
// error wrapping ErrBadOptions on the first violation.
func (o *Options) Validate() error {
	switch {
	case o.MaxIterations < 1:
		return fmt.Errorf("%w: MaxIterations must be at least 1", ErrBadOptions)
	case o.GradTol <= 0:
		return fmt.Errorf("%w: GradTol must be positive", ErrBadOptions)
	case o.Increase <= 1:
		return fmt.Errorf("%w: Increase must be greater than 1", ErrBadOptions)
	case o.MaxModifications < 1:
		return fmt.Errorf("%w: MaxModifications must be at least 1", ErrBadOptions)
	case o.Patience < 0:
		return fmt.Errorf("%w: Patience must be non-negative", ErrBadOptions)
	}

	return o.LineSearch.Validate()
}
