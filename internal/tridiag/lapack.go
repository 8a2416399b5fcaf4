package tridiag

import (
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"

	"github.com/san-kum/quadgen/internal/quad"
)

// LAPACK delegates to gonum's Dsteqr, the routine historically linked from
// Fortran as dsteqr.
type LAPACK struct {
	impl gonum.Implementation
}

func NewLAPACK() *LAPACK { return &LAPACK{} }

func (l *LAPACK) Name() string { return "lapack" }

func (l *LAPACK) Solve(diag, off []float64) ([]float64, []float64, error) {
	if err := checkShape(diag, off); err != nil {
		return nil, nil, err
	}
	n := len(diag)

	d := make([]float64, n)
	copy(d, diag)
	e := make([]float64, n)
	copy(e, off[:n-1])

	z := make([]float64, n*n)
	work := make([]float64, max(1, 2*n-2))

	if ok := l.impl.Dsteqr(lapack.EVTridiag, n, d, e, z, n, work); !ok {
		return nil, nil, &quad.ConvergenceError{Index: firstUnconverged(e), Iterations: 30 * n}
	}

	// z is row-major; eigenvector j is column j, so its first entry is z[j].
	first := make([]float64, n)
	copy(first, z[:n])
	return d, first, nil
}

func firstUnconverged(e []float64) int {
	for i, v := range e {
		if v != 0 {
			return i
		}
	}
	return 0
}
