package quad

import (
	"errors"
	"fmt"
)

// Error classes for rule generation.
var (
	// ErrConfiguration indicates an invalid kind, order, shape parameter or interval.
	ErrConfiguration = errors.New("quad: invalid configuration")

	// ErrNumerical indicates the tridiagonal eigensolver exhausted its iteration budget.
	ErrNumerical = errors.New("quad: eigensolver did not converge")

	// ErrSingularSystem indicates a singular or numerically unsolvable Vandermonde system.
	ErrSingularSystem = errors.New("quad: singular vandermonde system")
)

// ConfigError describes which parameter was rejected and why.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("quad: invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// Invalid is shorthand for constructing a *ConfigError.
func Invalid(param string, value any, reason string) error {
	return &ConfigError{Param: param, Value: value, Reason: reason}
}

// ConvergenceError reports the eigenvalue that failed to settle.
type ConvergenceError struct {
	Index      int
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("quad: eigenvalue %d not converged after %d iterations", e.Index, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNumerical
}

// SingularError carries the evidence for a rejected Vandermonde system.
// Duplicate holds the indices of two coincident nodes, or {-1, -1} when the
// rejection came from the condition estimate.
type SingularError struct {
	Duplicate [2]int
	Condition float64
}

func (e *SingularError) Error() string {
	if e.Duplicate[0] >= 0 {
		return fmt.Sprintf("quad: singular vandermonde system (nodes %d and %d coincide)", e.Duplicate[0], e.Duplicate[1])
	}
	return fmt.Sprintf("quad: vandermonde system ill-conditioned (cond=%.3e)", e.Condition)
}

func (e *SingularError) Unwrap() error {
	return ErrSingularSystem
}
