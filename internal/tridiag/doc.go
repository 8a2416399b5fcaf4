// Package tridiag computes eigenvalues of real symmetric tridiagonal matrices
// together with the first component of each normalized eigenvector, which is
// all the Golub-Welsch algorithm needs.
//
// Two backends implement [Solver]:
//
//   - [QL]: implicit QL with Wilkinson-style shifts, tracking only the first
//     row of the accumulated rotations (O(n^2) time, O(n) memory)
//   - [LAPACK]: gonum's pure-Go Dsteqr with full eigenvector accumulation
//     (O(n^3) time, O(n^2) memory)
//
// Both have a fixed iteration budget and report [quad.ErrNumerical] instead
// of looping forever.
package tridiag
