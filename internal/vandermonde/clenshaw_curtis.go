package vandermonde

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/quadgen/internal/quad"
)

// ClenshawCurtis returns the n-point Clenshaw-Curtis rule for weight 1 on
// [-1, 1], nodes ascending at -cos(k pi/N) with N = n-1. It is the
// interpolatory rule on Chebyshev extrema, so it agrees with Solve on those
// nodes, but the weights come from a cosine sum evaluated by one FFT:
//
//	w_k = c_k/N (1 - sum_{j=1}^{N/2} b_j/(4j^2-1) cos(2 pi j k/N))
//
// with c_0 = c_N = 1, c_k = 2 otherwise, and b_j = 1 when 2j = N, else 2.
func ClenshawCurtis(n int) (quad.Rule, error) {
	if n <= 0 {
		return quad.Rule{}, quad.Invalid("order", n, "must be positive")
	}
	if n == 1 {
		return quad.Rule{X: []float64{0}, W: []float64{2}}, nil
	}

	N := n - 1
	s := make([]float64, N)
	for j := 1; 2*j <= N; j++ {
		b := 2.0
		if 2*j == N {
			b = 1
		}
		s[j] = b / float64(4*j*j-1)
	}
	spectrum := fft.FFTReal(s)

	rule := quad.NewRule(n)
	for k := 0; k <= N; k++ {
		c := 2.0
		if k == 0 || k == N {
			c = 1
		}
		rule.X[k] = -math.Cos(float64(k) * math.Pi / float64(N))
		rule.W[k] = c / float64(N) * (1 - real(spectrum[k%N]))
	}

	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		rule.X[j] = -rule.X[i]
		w := 0.5 * (rule.W[i] + rule.W[j])
		rule.W[i], rule.W[j] = w, w
	}
	if n%2 == 1 {
		rule.X[n/2] = 0
	}
	return rule, nil
}
