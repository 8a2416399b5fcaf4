package tridiag

import (
	"fmt"

	"github.com/san-kum/quadgen/internal/quad"
)

// DefaultMaxIter is the per-eigenvalue iteration budget.
const DefaultMaxIter = 30

// Solver decomposes the symmetric tridiagonal matrix with diagonal d and
// off-diagonal e, where e[i] couples rows i and i+1. Implementations must not
// modify d or e. Eigenvalues come back in no guaranteed order; first[i] is
// the first component of the unit eigenvector for values[i].
type Solver interface {
	Name() string
	Solve(d, e []float64) (values, first []float64, err error)
}

func checkShape(d, e []float64) error {
	if len(d) == 0 {
		return quad.Invalid("order", 0, "must be positive")
	}
	if len(e) < len(d)-1 {
		return quad.Invalid("offdiag", len(e), fmt.Sprintf("need %d entries", len(d)-1))
	}
	return nil
}
