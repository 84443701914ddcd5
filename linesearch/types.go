// Package linesearch defines configuration options and sentinel errors for
// the backtracking-Armijo step selection.
//
// Errors (sentinel):
//
//	– ErrNotDescent if the supplied slope g·d is not negative.
//	– ErrNoDecrease if no acceptable step exists within the backtrack budget.
//	– ErrBadOptions if an option field is outside its valid range.
package linesearch

import "errors"

// Sentinel errors returned by Backtrack.
var (
	// ErrNotDescent indicates the supplied direction is not a descent
	// direction (slope g·d ≥ 0). The caller should reset its direction
	// (e.g. to steepest descent) rather than step along d.
	ErrNotDescent = errors.New("linesearch: direction is not a descent direction")

	// ErrNoDecrease indicates no step satisfying sufficient decrease was
	// found within the backtrack budget. Callers treat this as a recoverable
	// failure and terminate their outer loop as non-converged.
	ErrNoDecrease = errors.New("linesearch: no sufficient decrease within backtrack budget")

	// ErrBadOptions indicates an Options field is outside its valid range.
	ErrBadOptions = errors.New("linesearch: invalid options")
)

// Default option values, suitable for double-precision objectives.
const (
	// DefaultSufficientDecrease is the Armijo constant c₁.
	DefaultSufficientDecrease = 1e-4

	// DefaultContraction is the step shrink factor applied per backtrack.
	DefaultContraction = 0.5

	// DefaultInitialStep is the first trial step; 1 accepts a full
	// (quasi-)Newton step whenever sufficient decrease already holds.
	DefaultInitialStep = 1.0

	// DefaultMinStep is the smallest step worth trying; below it the search
	// gives up even if backtracks remain.
	DefaultMinStep = 1e-20

	// DefaultMaxBacktracks caps the number of trial evaluations per call.
	DefaultMaxBacktracks = 48
)

// Options configures Backtrack.
//
// SufficientDecrease – Armijo constant c₁ in (0, 1).
// Contraction        – per-backtrack step multiplier in (0, 1).
// InitialStep        – first trial step, must be > 0.
// MinStep            – abandon the search once α falls below this (> 0).
// MaxBacktracks      – trial-evaluation budget (≥ 1).
type Options struct {
	SufficientDecrease float64
	Contraction        float64
	InitialStep        float64
	MinStep            float64
	MaxBacktracks      int
}

// DefaultOptions returns Options with the package defaults. Use it as a
// starting point and override individual fields as needed.
func DefaultOptions() Options {
	return Options{
		SufficientDecrease: DefaultSufficientDecrease,
		Contraction:        DefaultContraction,
		InitialStep:        DefaultInitialStep,
		MinStep:            DefaultMinStep,
		MaxBacktracks:      DefaultMaxBacktracks,
	}
}

// Validate checks every field against its documented range, returning an
// error wrapping ErrBadOptions on the first violation.
func (o *Options) Validate() error {
	switch {
	case o.SufficientDecrease <= 0 || o.SufficientDecrease >= 1:
		return wrapBad("SufficientDecrease must be in (0,1)")
	case o.Contraction <= 0 || o.Contraction >= 1:
		return wrapBad("Contraction must be in (0,1)")
	case o.InitialStep <= 0:
		return wrapBad("InitialStep must be positive")
	case o.MinStep <= 0:
		return wrapBad("MinStep must be positive")
	case o.MaxBacktracks < 1:
		return wrapBad("MaxBacktracks must be at least 1")
	}

	return nil
}
