package quad

import (
	"fmt"
	"math"
	"strings"
)

// Kind enumerates the built-in rule families. The numeric values match the
// historical gq() kind codes.
type Kind int

const (
	Legendre   Kind = 1
	Chebyshev1 Kind = 2
	Chebyshev2 Kind = 3
	Hermite    Kind = 4
	Jacobi     Kind = 5
	Laguerre   Kind = 6
)

var kindNames = map[Kind]string{
	Legendre:   "legendre",
	Chebyshev1: "chebyshev1",
	Chebyshev2: "chebyshev2",
	Hermite:    "hermite",
	Jacobi:     "jacobi",
	Laguerre:   "laguerre",
}

// Kinds returns every valid kind in code order.
func Kinds() []Kind {
	return []Kind{Legendre, Chebyshev1, Chebyshev2, Hermite, Jacobi, Laguerre}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind accepts either a family name or its numeric code.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s || fmt.Sprint(int(k)) == s {
			return k, nil
		}
	}
	return 0, Invalid("kind", s, "unknown family")
}

// Family is a kind with its shape parameters. A is used by Jacobi and
// Laguerre, B only by Jacobi; other kinds ignore both.
type Family struct {
	Kind Kind
	A    float64
	B    float64
}

func (f Family) String() string {
	switch f.Kind {
	case Jacobi:
		return fmt.Sprintf("jacobi(a=%g,b=%g)", f.A, f.B)
	case Laguerre:
		return fmt.Sprintf("laguerre(a=%g)", f.A)
	default:
		return f.Kind.String()
	}
}

// Validate checks the kind code and the shape-parameter domain.
func (f Family) Validate() error {
	if !f.Kind.Valid() {
		return Invalid("kind", int(f.Kind), "must be in 1..6")
	}
	switch f.Kind {
	case Jacobi:
		if !(f.A > -1) || math.IsInf(f.A, 0) {
			return Invalid("a", f.A, "jacobi requires a > -1")
		}
		if !(f.B > -1) || math.IsInf(f.B, 0) {
			return Invalid("b", f.B, "jacobi requires b > -1")
		}
	case Laguerre:
		if !(f.A > -1) || math.IsInf(f.A, 0) {
			return Invalid("a", f.A, "laguerre requires a > -1")
		}
	}
	return nil
}

// Support returns the interval on which the family's weight function lives.
func (f Family) Support() (lo, hi float64) {
	switch f.Kind {
	case Hermite:
		return math.Inf(-1), math.Inf(1)
	case Laguerre:
		return 0, math.Inf(1)
	default:
		return -1, 1
	}
}

// Recursion holds the monic three-term recursion
//
//	p_{k+1}(x) = (x - Alpha[k]) p_k(x) - Beta[k] p_{k-1}(x)
//
// and the zeroth moment Mu0 of the weight function. Beta[0] is not used by
// the Jacobi matrix.
type Recursion struct {
	Alpha []float64
	Beta  []float64
	Mu0   float64
}

// Order is the number of nodes the recursion describes.
func (r Recursion) Order() int { return len(r.Alpha) }

// Validate checks that the recursion can form a real symmetric Jacobi matrix.
func (r Recursion) Validate() error {
	n := len(r.Alpha)
	if n <= 0 {
		return Invalid("order", n, "must be positive")
	}
	if len(r.Beta) < n {
		return Invalid("beta", len(r.Beta), fmt.Sprintf("need %d coefficients", n))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(r.Alpha[i]) || math.IsInf(r.Alpha[i], 0) {
			return Invalid(fmt.Sprintf("alpha[%d]", i), r.Alpha[i], "must be finite")
		}
	}
	for i := 1; i < n; i++ {
		if math.IsNaN(r.Beta[i]) || math.IsInf(r.Beta[i], 0) || r.Beta[i] < 0 {
			return Invalid(fmt.Sprintf("beta[%d]", i), r.Beta[i], "must be finite and non-negative")
		}
	}
	if math.IsNaN(r.Mu0) || math.IsInf(r.Mu0, 0) {
		return Invalid("mu0", r.Mu0, "must be finite")
	}
	return nil
}

// Rule is a quadrature rule: X ascending, W parallel to X.
type Rule struct {
	X []float64
	W []float64
}

// NewRule allocates a zeroed rule of order n.
func NewRule(n int) Rule {
	return Rule{X: make([]float64, n), W: make([]float64, n)}
}

func (r Rule) Order() int { return len(r.X) }

func (r Rule) Clone() Rule {
	c := NewRule(len(r.X))
	copy(c.X, r.X)
	copy(c.W, r.W)
	return c
}

// Integrate returns sum_i w_i f(x_i).
func (r Rule) Integrate(f func(float64) float64) float64 {
	sum := 0.0
	for i, x := range r.X {
		sum += r.W[i] * f(x)
	}
	return sum
}

// Mass is the sum of the weights.
func (r Rule) Mass() float64 {
	sum := 0.0
	for _, w := range r.W {
		sum += w
	}
	return sum
}

// IsValid reports whether every abscissa and weight is finite.
func (r Rule) IsValid() bool {
	if len(r.X) != len(r.W) {
		return false
	}
	for i := range r.X {
		if math.IsNaN(r.X[i]) || math.IsInf(r.X[i], 0) || math.IsNaN(r.W[i]) || math.IsInf(r.W[i], 0) {
			return false
		}
	}
	return true
}

// CheckInterval reports a ConfigError unless lo and hi are finite with lo < hi.
func CheckInterval(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Invalid("interval", [2]float64{lo, hi}, "bounds must be finite")
	}
	if lo >= hi {
		return Invalid("interval", [2]float64{lo, hi}, "lower bound must be below upper bound")
	}
	return nil
}

// Rescale maps a rule defined on [-1, 1] onto [lo, hi].
func (r Rule) Rescale(lo, hi float64) (Rule, error) {
	if err := CheckInterval(lo, hi); err != nil {
		return Rule{}, err
	}
	half := 0.5 * (hi - lo)
	mid := 0.5 * (hi + lo)
	out := NewRule(len(r.X))
	for i := range r.X {
		out.X[i] = half*r.X[i] + mid
		out.W[i] = half * r.W[i]
	}
	return out, nil
}
