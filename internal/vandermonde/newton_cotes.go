package vandermonde

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

// NewtonCotes builds the n-point Newton-Cotes rule for weight 1 on [lo, hi].
// A closed rule includes both endpoints and needs n >= 2; an open rule uses
// the n interior points of an (n+1)-interval grid.
//
// Weights are solved on [-1, 1], where odd moments vanish, and then
// rescaled.
func NewtonCotes(n int, lo, hi float64, closed bool) (quad.Rule, error) {
	return New(DefaultMaxCondition).NewtonCotes(n, lo, hi, closed)
}

func (s *Solver) NewtonCotes(n int, lo, hi float64, closed bool) (quad.Rule, error) {
	if n <= 0 {
		return quad.Rule{}, quad.Invalid("order", n, "must be positive")
	}
	if closed && n == 1 {
		return quad.Rule{}, quad.Invalid("order", n, "closed rule needs both endpoints")
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return quad.Rule{}, quad.Invalid("interval", [2]float64{lo, hi}, "bounds must be finite")
	}
	if lo >= hi {
		return quad.Rule{}, quad.Invalid("interval", [2]float64{lo, hi}, "lower bound must be below upper bound")
	}

	x := make([]float64, n)
	if closed {
		h := 2 / float64(n-1)
		for i := range x {
			x[i] = -1 + float64(i)*h
		}
		x[n-1] = 1
	} else {
		h := 2 / float64(n+1)
		for i := range x {
			x[i] = -1 + float64(i+1)*h
		}
	}
	// keep the grid exactly symmetric
	for i := 0; i < n/2; i++ {
		x[n-1-i] = -x[i]
	}
	if n%2 == 1 {
		x[n/2] = 0
	}

	q := make([]float64, n)
	for j := 0; j < n; j += 2 {
		q[j] = 2 / float64(j+1)
	}

	w, err := s.Solve(x, q)
	if err != nil {
		return quad.Rule{}, err
	}
	return quad.Rule{X: x, W: w}.Rescale(lo, hi)
}
