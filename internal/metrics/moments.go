package metrics

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

// Moments returns the exact moments integral(x^k w(x) dx), k = 0..kmax, of the
// weight function of f. They come from integrating the derivative of
// x^k times the weight by parts, which gives a short recurrence per family.
func Moments(f quad.Family, kmax int) ([]float64, error) {
	if kmax < 0 {
		return nil, quad.Invalid("degree", kmax, "must be non-negative")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	m := make([]float64, kmax+1)
	switch f.Kind {
	case quad.Hermite:
		// M_{k+1} = k/2 M_{k-1}
		m[0] = math.Sqrt(math.Pi)
		for k := 1; k <= kmax; k++ {
			if k%2 == 0 {
				m[k] = float64(k-1) / 2 * m[k-2]
			}
		}
	case quad.Laguerre:
		// M_k = (k + a) M_{k-1}
		lg, _ := math.Lgamma(f.A + 1)
		m[0] = math.Exp(lg)
		for k := 1; k <= kmax; k++ {
			m[k] = (float64(k) + f.A) * m[k-1]
		}
	default:
		a, b := jacobiShape(f)
		lgA, _ := math.Lgamma(a + 1)
		lgB, _ := math.Lgamma(b + 1)
		lgAB, _ := math.Lgamma(a + b + 2)
		m[0] = math.Exp((a+b+1)*math.Ln2 + lgA + lgB - lgAB)
		// (a+b+2+k) M_{k+1} = (b-a) M_k + k M_{k-1}
		for k := 0; k < kmax; k++ {
			next := (b - a) * m[k]
			if k > 0 {
				next += float64(k) * m[k-1]
			}
			m[k+1] = next / (a + b + 2 + float64(k))
		}
	}
	return m, nil
}

// Moment returns a single moment of f's weight function.
func Moment(f quad.Family, k int) (float64, error) {
	m, err := Moments(f, k)
	if err != nil {
		return 0, err
	}
	return m[k], nil
}

func jacobiShape(f quad.Family) (a, b float64) {
	switch f.Kind {
	case quad.Chebyshev1:
		return -0.5, -0.5
	case quad.Chebyshev2:
		return 0.5, 0.5
	case quad.Jacobi:
		return f.A, f.B
	default:
		return 0, 0
	}
}

// MomentError returns the largest relative error of the rule on x^k for
// k = 0..maxDeg. Each error is scaled by sum_i |w_i| |x_i|^k so that odd
// moments, which vanish for symmetric weights, are still measured sensibly.
func MomentError(r quad.Rule, f quad.Family, maxDeg int) (float64, error) {
	m, err := Moments(f, maxDeg)
	if err != nil {
		return 0, err
	}

	worst := 0.0
	pow := make([]float64, len(r.X))
	for i := range pow {
		pow[i] = 1
	}
	for k := 0; k <= maxDeg; k++ {
		sum, scale := 0.0, 0.0
		for i, x := range r.X {
			sum += r.W[i] * pow[i]
			scale += math.Abs(r.W[i] * pow[i])
			pow[i] *= x
		}
		if scale == 0 {
			scale = 1
		}
		if e := math.Abs(sum-m[k]) / scale; e > worst || math.IsNaN(e) {
			worst = e
		}
	}
	return worst, nil
}
