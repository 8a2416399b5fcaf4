package gauss

import (
	"math"
	"sort"

	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/tridiag"
)

// GolubWelsch computes the rule for rec. The recursion is only read.
func GolubWelsch(rec quad.Recursion, solver tridiag.Solver) (quad.Rule, error) {
	if err := rec.Validate(); err != nil {
		return quad.Rule{}, err
	}
	n := rec.Order()

	off := make([]float64, n-1)
	for k := 1; k < n; k++ {
		off[k-1] = math.Sqrt(rec.Beta[k])
	}

	values, first, err := solver.Solve(rec.Alpha[:n], off)
	if err != nil {
		return quad.Rule{}, err
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] < values[idx[j]] })

	rule := quad.NewRule(n)
	for i, k := range idx {
		rule.X[i] = values[k]
		rule.W[i] = rec.Mu0 * first[k] * first[k]
	}
	if symmetric(rec.Alpha[:n]) {
		symmetrize(rule)
	}
	return rule, nil
}

func symmetric(alpha []float64) bool {
	for _, a := range alpha {
		if a != 0 {
			return false
		}
	}
	return true
}

// symmetrize enforces x_i = -x_{n-1-i} and w_i = w_{n-1-i} for even weight
// functions, and pins the middle node of odd rules to exactly zero.
func symmetrize(r quad.Rule) {
	n := len(r.X)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		x := 0.5 * (r.X[j] - r.X[i])
		w := 0.5 * (r.W[i] + r.W[j])
		r.X[i], r.X[j] = -x, x
		r.W[i], r.W[j] = w, w
	}
	if n%2 == 1 {
		r.X[n/2] = 0
	}
}
