// Package vandermonde solves for quadrature weights on prescribed nodes.
//
// Given nodes x[0..n-1] and target moments q[0..n-1], the weights satisfy
//
//	sum_i x_i^j w_i = q_j,  j = 0..n-1
//
// so the rule reproduces the first n moments of whatever weight function
// produced q. Duplicate nodes make the system singular and are rejected
// before any factorization; nearly coincident nodes are caught by the LU
// condition estimate.
package vandermonde

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quadgen/internal/quad"
)

// DefaultMaxCondition is the largest accepted condition-number estimate.
const DefaultMaxCondition = 1e14

type Solver struct {
	MaxCondition float64
}

func New(maxCondition float64) *Solver {
	if maxCondition <= 0 {
		maxCondition = DefaultMaxCondition
	}
	return &Solver{MaxCondition: maxCondition}
}

// Solve uses DefaultMaxCondition.
func Solve(x, q []float64) ([]float64, error) {
	return New(DefaultMaxCondition).Solve(x, q)
}

// Solve returns the weights for nodes x and moments q. Neither input is
// modified.
func (s *Solver) Solve(x, q []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, quad.Invalid("order", 0, "must be positive")
	}
	if len(q) != n {
		return nil, quad.Invalid("moments", len(q), fmt.Sprintf("need %d to match nodes", n))
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, quad.Invalid(fmt.Sprintf("x[%d]", i), x[i], "must be finite")
		}
		if math.IsNaN(q[i]) || math.IsInf(q[i], 0) {
			return nil, quad.Invalid(fmt.Sprintf("q[%d]", i), q[i], "must be finite")
		}
	}
	if i, j, ok := duplicate(x); ok {
		return nil, &quad.SingularError{Duplicate: [2]int{i, j}}
	}

	a := mat.NewDense(n, n, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j < n; j++ {
			a.Set(j, i, p)
			p *= xi
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	limit := s.MaxCondition
	if limit <= 0 {
		limit = DefaultMaxCondition
	}
	if math.IsNaN(cond) || cond > limit {
		return nil, &quad.SingularError{Duplicate: [2]int{-1, -1}, Condition: cond}
	}

	var w mat.VecDense
	if err := lu.SolveVecTo(&w, false, mat.NewVecDense(n, append([]float64(nil), q...))); err != nil {
		return nil, &quad.SingularError{Duplicate: [2]int{-1, -1}, Condition: cond}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = w.AtVec(i)
	}
	return out, nil
}

// duplicate finds two exactly equal nodes, returning their indices in
// increasing order.
func duplicate(x []float64) (int, int, bool) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	for k := 1; k < len(idx); k++ {
		if x[idx[k]] == x[idx[k-1]] {
			i, j := idx[k-1], idx[k]
			if i > j {
				i, j = j, i
			}
			return i, j, true
		}
	}
	return 0, 0, false
}
