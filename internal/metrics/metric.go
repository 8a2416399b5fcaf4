// Package metrics measures how well a generated rule honours its contract:
// polynomial exactness, total mass, weight positivity and node ordering.
//
// Each [Metric] accumulates over every rule it observes, so one instance can
// summarize a whole table of orders.
package metrics

import (
	"math"

	"github.com/san-kum/quadgen/internal/quad"
)

type Metric interface {
	Name() string
	Observe(r quad.Rule)
	Value() float64
	Reset()
}

// Exactness tracks the worst relative moment error over degrees 0..2n-1.
type Exactness struct {
	family quad.Family
	worst  float64
	err    error
}

func NewExactness(f quad.Family) *Exactness {
	return &Exactness{family: f}
}

func (e *Exactness) Name() string { return "exactness" }

func (e *Exactness) Observe(r quad.Rule) {
	if r.Order() == 0 {
		return
	}
	v, err := MomentError(r, e.family, 2*r.Order()-1)
	if err != nil {
		e.err = err
		return
	}
	if v > e.worst || math.IsNaN(v) {
		e.worst = v
	}
}

func (e *Exactness) Value() float64 {
	if e.err != nil {
		return math.NaN()
	}
	return e.worst
}

// Err reports a moment evaluation failure, e.g. an invalid family.
func (e *Exactness) Err() error { return e.err }

func (e *Exactness) Reset() {
	e.worst = 0
	e.err = nil
}

// MassDrift tracks the worst relative deviation of sum(w) from mu0.
type MassDrift struct {
	mu0   float64
	worst float64
}

func NewMassDrift(mu0 float64) *MassDrift {
	return &MassDrift{mu0: mu0}
}

func (m *MassDrift) Name() string { return "mass_drift" }

func (m *MassDrift) Observe(r quad.Rule) {
	d := math.Abs(r.Mass() - m.mu0)
	if m.mu0 != 0 {
		d /= math.Abs(m.mu0)
	}
	if d > m.worst || math.IsNaN(d) {
		m.worst = d
	}
}

func (m *MassDrift) Value() float64 { return m.worst }
func (m *MassDrift) Reset()         { m.worst = 0 }

// MinWeight is the smallest weight seen; positive for every valid Gauss rule.
type MinWeight struct {
	min     float64
	samples int
}

func NewMinWeight() *MinWeight { return &MinWeight{} }

func (m *MinWeight) Name() string { return "min_weight" }

func (m *MinWeight) Observe(r quad.Rule) {
	for _, w := range r.W {
		if m.samples == 0 || w < m.min {
			m.min = w
		}
		m.samples++
	}
}

func (m *MinWeight) Value() float64 {
	if m.samples == 0 {
		return math.NaN()
	}
	return m.min
}

func (m *MinWeight) Reset() {
	m.min = 0
	m.samples = 0
}

// MinSpacing is the smallest gap x[i+1]-x[i]; positive iff nodes strictly increase.
type MinSpacing struct {
	min  float64
	seen bool
}

func NewMinSpacing() *MinSpacing { return &MinSpacing{} }

func (m *MinSpacing) Name() string { return "min_spacing" }

func (m *MinSpacing) Observe(r quad.Rule) {
	for i := 1; i < len(r.X); i++ {
		gap := r.X[i] - r.X[i-1]
		if !m.seen || gap < m.min {
			m.min = gap
			m.seen = true
		}
	}
}

func (m *MinSpacing) Value() float64 {
	if !m.seen {
		return math.Inf(1)
	}
	return m.min
}

func (m *MinSpacing) Reset() {
	m.min = 0
	m.seen = false
}

// Evaluate runs every metric over the rules and returns name -> value.
func Evaluate(rules []quad.Rule, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, r := range rules {
			m.Observe(r)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
