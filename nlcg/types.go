// Package nlcg defines the conjugacy-coefficient variants, configuration
// options and sentinel errors for the nonlinear conjugate gradient solver.
//
// Errors (sentinel):
//
//	– ErrBadOptions if an option field is outside its valid range.
//	– core.ErrNilProblem / core.ErrEmptyIterate for invalid Minimize input.
package nlcg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// ErrBadOptions indicates an Options field is outside its valid range.
var ErrBadOptions = errors.New("nlcg: invalid options")

// Variant selects the conjugacy-coefficient formula.
//
//   - PolakRibiere   — β = ∇f_{k+1}·(∇f_{k+1} − ∇f_k) / ‖∇f_k‖².
//     Adapts faster on nonquadratic objectives; the clamp max(β, 0) makes
//     it globally safe (the PR+ rule).
//
//   - FletcherReeves — β = ‖∇f_{k+1}‖² / ‖∇f_k‖².
//     The original formula; always non-negative, slower to recover from
//     bad directions.
type Variant int

const (
	// PolakRibiere selects the clamped Polak–Ribière (PR+) coefficient.
	PolakRibiere Variant = iota

	// FletcherReeves selects the Fletcher–Reeves coefficient.
	FletcherReeves
)

// Options configures Minimize.
//
// MaxIterations   – outer-iteration cap (≥ 1); reaching it is normal.
// GradTol         – gradient-norm convergence threshold (> 0).
// Variant         – conjugacy-coefficient formula (default PolakRibiere).
// RestartInterval – reset the direction to −∇f every this many iterations;
//
//	0 means the problem dimension. Must be ≥ 0.
//
// Patience        – consecutive non-improving iterations tolerated before
//
//	stopping as Stagnation; 0 disables.
//
// StagnationTol   – relative improvement threshold (see core.Tracker).
// LineSearch      – backtracking-Armijo parameters.
type Options struct {
	MaxIterations   int
	GradTol         float64
	Variant         Variant
	RestartInterval int
	Patience        int
	StagnationTol   float64
	LineSearch      linesearch.Options
}

// DefaultOptions returns Options with package defaults: 500 iterations,
// gradient tolerance 1e-10, Polak–Ribière, restart every n iterations and
// the linesearch package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: core.DefaultMaxIterations,
		GradTol:       core.DefaultGradTol,
		Variant:       PolakRibiere,
		LineSearch:    linesearch.DefaultOptions(),
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
	case o.Variant != PolakRibiere && o.Variant != FletcherReeves:
		return fmt.Errorf("%w: unknown Variant", ErrBadOptions)
	case o.RestartInterval < 0:
		return fmt.Errorf("%w: RestartInterval must be non-negative", ErrBadOptions)
	case o.Patience < 0:
		return fmt.Errorf("%w: Patience must be non-negative", ErrBadOptions)
	}

	return o.LineSearch.Validate()
}
