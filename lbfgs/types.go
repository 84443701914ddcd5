// Package lbfgs defines configuration options and sentinel errors for the
// limited-memory BFGS solver.
//
// Errors (sentinel):
//
//	– ErrBadOptions if an option field is outside its valid range.
//	– core.ErrNilProblem / core.ErrEmptyIterate for invalid Minimize input.
package lbfgs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/linesearch"
)

// ErrBadOptions indicates an Options field is outside its valid range.
var ErrBadOptions = errors.New("lbfgs: invalid options")

// DefaultMemory is the default curvature-history capacity m.
const DefaultMemory = 8

// Options configures Minimize.
//
// MaxIterations – outer-iteration cap (≥ 1). Reaching it is a normal
//
//	terminal state, not an error.
//
// GradTol       – gradient-norm convergence threshold (> 0).
// Memory        – curvature-history capacity m (≥ 1).
// Patience      – consecutive non-improving iterations tolerated before the
//
//	run stops as Stagnation; 0 disables stagnation detection.
//
// StagnationTol – relative improvement below which an iteration counts as
//
//	non-improving (see core.Tracker).
//
// LineSearch    – backtracking-Armijo parameters.
type Options struct {
	MaxIterations int
	GradTol       float64
	Memory        int
	Patience      int
	StagnationTol float64
	LineSearch    linesearch.Options
}

// DefaultOptions returns Options with package defaults: 500 iterations,
// gradient tolerance 1e-10, memory 8, stagnation detection off, and the
// linesearch package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: core.DefaultMaxIterations,
		GradTol:       core.DefaultGradTol,
		Memory:        DefaultMemory,
		LineSearch:    linesearch.DefaultOptions(),
	}
}

// Validate checks every field against its documented range, returning an
// error wrapping ErrBadOptions on the first violation. Line-search fields
// are validated by the linesearch package.
func (o *Options) Validate() error {
	switch {
	case o.MaxIterations < 1:
		return fmt.Errorf("%w: MaxIterations must be at least 1", ErrBadOptions)
	case o.GradTol <= 0:
		return fmt.Errorf("%w: GradTol must be positive", ErrBadOptions)
	case o.Memory < 1:
		return fmt.Errorf("%w: Memory must be at least 1", ErrBadOptions)
	case o.Patience < 0:
		return fmt.Errorf("%w: Patience must be non-negative", ErrBadOptions)
	}

	return o.LineSearch.Validate()
}
