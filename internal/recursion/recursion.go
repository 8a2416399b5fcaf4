// Package recursion tabulates the monic three-term recursion coefficients of
// the classical orthogonal-polynomial families.
//
// For a family with weight function w on its support, the coefficients
// satisfy
//
//	p_{k+1}(x) = (x - alpha_k) p_k(x) - beta_k p_{k-1}(x)
//
// and Mu0 is the integral of w. Weight functions:
//
//	legendre    1                       on [-1, 1]
//	chebyshev1  (1-x^2)^(-1/2)          on [-1, 1]
//	chebyshev2  (1-x^2)^(1/2)           on [-1, 1]
//	hermite     exp(-x^2)               on (-inf, inf)
//	jacobi      (1-x)^a (1+x)^b         on [-1, 1]
//	laguerre    x^a exp(-x)             on [0, inf)
package recursion

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

// Table returns alpha[0..n-1], beta[0..n-1] and mu0 for family f. beta[0] is
// set to mu0 so the slice doubles as the moment seed.
func Table(f quad.Family, n int) (quad.Recursion, error) {
	if n <= 0 {
		return quad.Recursion{}, quad.Invalid("order", n, "must be positive")
	}
	if err := f.Validate(); err != nil {
		return quad.Recursion{}, err
	}

	rec := quad.Recursion{
		Alpha: make([]float64, n),
		Beta:  make([]float64, n),
	}

	switch f.Kind {
	case quad.Legendre:
		rec.Mu0 = 2
		for k := 1; k < n; k++ {
			kk := float64(k * k)
			rec.Beta[k] = kk / (4*kk - 1)
		}
	case quad.Chebyshev1:
		rec.Mu0 = math.Pi
		for k := 1; k < n; k++ {
			rec.Beta[k] = 0.25
		}
		if n > 1 {
			rec.Beta[1] = 0.5
		}
	case quad.Chebyshev2:
		rec.Mu0 = math.Pi / 2
		for k := 1; k < n; k++ {
			rec.Beta[k] = 0.25
		}
	case quad.Hermite:
		rec.Mu0 = math.Sqrt(math.Pi)
		for k := 1; k < n; k++ {
			rec.Beta[k] = float64(k) / 2
		}
	case quad.Jacobi:
		jacobi(f.A, f.B, &rec)
	case quad.Laguerre:
		lg, _ := math.Lgamma(f.A + 1)
		rec.Mu0 = math.Exp(lg)
		for k := 0; k < n; k++ {
			fk := float64(k)
			rec.Alpha[k] = 2*fk + f.A + 1
			rec.Beta[k] = fk * (fk + f.A)
		}
	}

	rec.Beta[0] = rec.Mu0
	return rec, nil
}

// jacobi fills the recursion for weight (1-x)^a (1+x)^b. The k=0 and k=1
// terms are written in cancelled form so a+b = 0 and a+b = -1 stay finite.
func jacobi(a, b float64, rec *quad.Recursion) {
	ab := a + b
	lgA, _ := math.Lgamma(a + 1)
	lgB, _ := math.Lgamma(b + 1)
	lgAB, _ := math.Lgamma(ab + 2)
	rec.Mu0 = math.Exp((ab+1)*math.Ln2 + lgA + lgB - lgAB)

	n := len(rec.Alpha)
	rec.Alpha[0] = (b - a) / (ab + 2)
	for k := 1; k < n; k++ {
		fk := float64(k)
		s := 2*fk + ab
		rec.Alpha[k] = (b*b - a*a) / (s * (s + 2))
	}

	if n > 1 {
		rec.Beta[1] = 4 * (1 + a) * (1 + b) / ((2 + ab) * (2 + ab) * (3 + ab))
	}
	for k := 2; k < n; k++ {
		fk := float64(k)
		s := 2*fk + ab
		rec.Beta[k] = 4 * fk * (fk + a) * (fk + b) * (fk + ab) / (s * s * (s + 1) * (s - 1))
	}
}
