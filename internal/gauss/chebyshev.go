package gauss

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

// Chebyshev returns the n-point Gauss-Chebyshev rule of the first (kind 1)
// or second (kind 2) kind in ascending node order.
//
//	kind 1: x_k = cos((2k-1) pi / 2n),  w_k = pi/n
//	kind 2: x_k = cos(k pi / (n+1)),    w_k = pi/(n+1) sin^2(k pi/(n+1))
func Chebyshev(kind, n int) (quad.Rule, error) {
	if kind != 1 && kind != 2 {
		return quad.Rule{}, quad.Invalid("kind", kind, "chebyshev kind must be 1 or 2")
	}
	if n <= 0 {
		return quad.Rule{}, quad.Invalid("order", n, "must be positive")
	}

	rule := quad.NewRule(n)
	fn := float64(n)
	half := n / 2

	if kind == 1 {
		w := math.Pi / fn
		for i := 0; i < half; i++ {
			x := math.Cos(float64(2*i+1) * math.Pi / (2 * fn))
			rule.X[i], rule.X[n-1-i] = -x, x
		}
		for i := range rule.W {
			rule.W[i] = w
		}
		return rule, nil
	}

	h := math.Pi / (fn + 1)
	for i := 0; i < half; i++ {
		theta := float64(i+1) * h
		x := math.Cos(theta)
		s := math.Sin(theta)
		rule.X[i], rule.X[n-1-i] = -x, x
		rule.W[i] = h * s * s
		rule.W[n-1-i] = rule.W[i]
	}
	if n%2 == 1 {
		rule.W[half] = h
	}
	return rule, nil
}
