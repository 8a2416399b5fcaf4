package tridiag

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

// QL is the implicit QL eigensolver. MaxIter bounds the number of QL sweeps
// spent on any single eigenvalue.
type QL struct {
	MaxIter int
}

func NewQL(maxIter int) *QL {
	return &QL{MaxIter: maxIter}
}

func (q *QL) Name() string { return "ql" }

func (q *QL) Solve(diag, off []float64) ([]float64, []float64, error) {
	if err := checkShape(diag, off); err != nil {
		return nil, nil, err
	}
	n := len(diag)

	d := make([]float64, n)
	copy(d, diag)
	e := make([]float64, n)
	copy(e, off[:n-1])

	// first row of the accumulated rotation matrix
	z := make([]float64, n)
	z[0] = 1

	const eps = 0x1p-52

	for l := 0; l < n; l++ {
		iter := 0
		for {
			m := l
			for ; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= eps*dd {
					break
				}
			}
			if m == l {
				break
			}
			if iter >= q.MaxIter {
				return nil, nil, &quad.ConvergenceError{Index: l, Iterations: iter}
			}
			iter++

			// shift from the leading 2x2 block
			g := (d[l+1] - d[l]) / (2 * e[l])
			r := math.Hypot(g, 1)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))

			s, c, p := 1.0, 1.0, 0.0
			deflated := false
			for i := m - 1; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					d[i+1] -= p
					e[m] = 0
					deflated = true
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2*c*b
				p = s * r
				d[i+1] = g + p
				g = c*r - b

				f = z[i+1]
				z[i+1] = s*z[i] + c*f
				z[i] = c*z[i] - s*f
			}
			if deflated {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}

	return d, z, nil
}
