// Package quad provides the core types shared by the quadrature engine.
//
// The package defines the vocabulary used by every rule generator:
//
//   - [Kind]: the classical orthogonal-polynomial families (Legendre, Chebyshev,
//     Hermite, Jacobi, Laguerre)
//   - [Family]: a kind together with its shape parameters
//   - [Recursion]: three-term recursion coefficients and zeroth moment
//   - [Rule]: abscissas and weights of a quadrature rule
//
// # Errors
//
// Failures fall into three classes, each matched with [errors.Is]:
//
//   - [ErrConfiguration]: bad kind, order, shape parameter or interval
//   - [ErrNumerical]: the tridiagonal eigensolver did not converge
//   - [ErrSingularSystem]: a Vandermonde system is singular or too ill-conditioned
//
// # Thread Safety
//
// Nothing in this package holds shared mutable state. Independent calls with
// independent buffers may run concurrently; see [ParallelFor].
package quad
