// Package core defines shared types for the lvlopt solvers: the objective
// contract, solve statuses, results and configuration defaults.
//
// Errors (sentinel):
//
//	– ErrNilProblem   if a nil Problem is passed to a solver.
//	– ErrEmptyIterate if the initial guess has zero length.
package core

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors shared by all solver entry points.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Minimize.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrEmptyIterate indicates that the initial guess vector has zero length.
	ErrEmptyIterate = errors.New("core: initial iterate is empty")
)

// Shared convergence defaults, sane for typical double-precision problems.
const (
	// DefaultGradTol is the default gradient-norm convergence threshold.
	DefaultGradTol = 1e-10

	// DefaultMaxIterations is the default iteration cap for first-order solvers.
	DefaultMaxIterations = 500
)

// Problem is the minimal objective contract: a scalar objective value at a
// point. Value must be a pure function of x — solvers assume no side effects
// and may evaluate it at arbitrary probe points.
type Problem interface {
	// Value returns the objective value f(x).
	Value(x []float64) float64
}

// Gradienter is the optional analytic-gradient capability. Implementations
// write ∇f(x) into dst (len(dst) == len(x)).
//
// Problems that do not implement Gradienter get a central finite-difference
// gradient costing 2·len(x) Value calls per evaluation.
type Gradienter interface {
	// Gradient writes ∇f(x) into dst.
	Gradient(dst, x []float64)
}

// Hessianer is the optional analytic-Hessian capability, required only for
// second-order methods (Newton). Implementations write ∇²f(x) into dst.
//
// Problems that do not implement Hessianer get a finite-difference Hessian
// costing 2·len(x) gradient evaluations per call.
type Hessianer interface {
	// Hessian writes ∇²f(x) into dst.
	Hessian(dst *mat.SymDense, x []float64)
}

// Status describes how a solve terminated. Programs should not rely on the
// underlying numeric value being constant.
type Status int

const (
	// NotTerminated means the solve has not finished (internal zero value).
	NotTerminated Status = iota

	// GradientThreshold means the gradient norm dropped below the tolerance.
	GradientThreshold

	// IterationLimit means the iteration cap was reached. This is a normal
	// terminal state for nonlinear problems, not an error.
	IterationLimit

	// LinesearchFailure means no step satisfying sufficient decrease was
	// found within the backtrack budget; the solve ended non-converged.
	LinesearchFailure

	// Stagnation means the objective stopped improving for longer than the
	// configured patience (see Tracker).
	Stagnation

	// NotFinite means NaN or Inf appeared in the iterate or gradient. The
	// caller must treat x as unreliable and check it with Finite.
	NotFinite
)

// statusNames maps Status values to their display names.
var statusNames = [...]string{
	NotTerminated:     "NotTerminated",
	GradientThreshold: "GradientThreshold",
	IterationLimit:    "IterationLimit",
	LinesearchFailure: "LinesearchFailure",
	Stagnation:        "Stagnation",
	NotFinite:         "NotFinite",
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}

	return statusNames[s]
}

// Converged reports whether the status indicates the gradient-norm
// convergence criterion was met.
func (s Status) Converged() bool { return s == GradientThreshold }

// Result summarizes one Minimize call. The iterate itself is mutated in
// place by the solver; Result carries everything else a caller needs to
// judge the outcome deterministically.
type Result struct {
	// Status is the terminal state of the solve.
	Status Status

	// Iterations is the number of completed outer iterations.
	Iterations int

	// FuncEvals counts objective Value calls made by the solver and its
	// line search (finite-difference probes included).
	FuncEvals int

	// GradEvals counts gradient evaluations (analytic or approximated).
	GradEvals int

	// Value is the objective value at the final iterate.
	Value float64

	// GradNorm is the Euclidean gradient norm at the final iterate.
	GradNorm float64
}
