package gq

import (
	"fmt"

	"github.com/san-kum/quadgen/internal/array"
	"github.com/san-kum/quadgen/internal/gauss"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/recursion"
	"github.com/san-kum/quadgen/internal/tridiag"
	"github.com/san-kum/quadgen/internal/vandermonde"
)

type Dispatcher struct {
	solver tridiag.Solver
	vander *vandermonde.Solver
}

type Option func(*Dispatcher)

// WithSolver selects the tridiagonal eigensolver used by Golub-Welsch.
func WithSolver(s tridiag.Solver) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.solver = s
		}
	}
}

// WithMaxCondition sets the Vandermonde condition-number limit.
func WithMaxCondition(c float64) Option {
	return func(d *Dispatcher) { d.vander = vandermonde.New(c) }
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		solver: tridiag.NewQL(tridiag.DefaultMaxIter),
		vander: vandermonde.New(vandermonde.DefaultMaxCondition),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Solver reports the eigensolver in use.
func (d *Dispatcher) Solver() tridiag.Solver { return d.solver }

// Rule generates the n-point rule for family f.
func (d *Dispatcher) Rule(f quad.Family, n int) (quad.Rule, error) {
	if n <= 0 {
		return quad.Rule{}, quad.Invalid("order", n, "must be positive")
	}
	if err := f.Validate(); err != nil {
		return quad.Rule{}, err
	}

	switch f.Kind {
	case quad.Chebyshev1:
		return gauss.Chebyshev(1, n)
	case quad.Chebyshev2:
		return gauss.Chebyshev(2, n)
	}

	rec, err := recursion.Table(f, n)
	if err != nil {
		return quad.Rule{}, err
	}
	rule, err := gauss.GolubWelsch(rec, d.solver)
	if err != nil {
		return quad.Rule{}, fmt.Errorf("%v n=%d: %w", f, n, err)
	}
	return rule, nil
}

// GQ fills x and w with the rule of order x.Len(). w is resized to match.
func (d *Dispatcher) GQ(kind quad.Kind, a, b float64, x, w *array.Array1D[float64]) error {
	if x == nil || w == nil {
		return quad.Invalid("output", nil, "x and w must be non-nil")
	}
	rule, err := d.Rule(quad.Family{Kind: kind, A: a, B: b}, x.Len())
	if err != nil {
		return err
	}
	fill(rule, x, w)
	return nil
}

// GQN fills x[:n] and w[:n]. Both buffers must hold at least n values.
func (d *Dispatcher) GQN(kind quad.Kind, n int, a, b float64, x, w []float64) error {
	if err := checkBuffers(n, x, w); err != nil {
		return err
	}
	rule, err := d.Rule(quad.Family{Kind: kind, A: a, B: b}, n)
	if err != nil {
		return err
	}
	copy(x, rule.X)
	copy(w, rule.W)
	return nil
}

// GQGen runs Golub-Welsch on the recursion alpha, beta with zeroth moment
// mu0. The order is alpha.Len(); x and w are resized to it. alpha and beta
// are only read.
func (d *Dispatcher) GQGen(alpha, beta *array.Array1D[float64], mu0 float64, x, w *array.Array1D[float64]) error {
	if alpha == nil || beta == nil {
		return quad.Invalid("recursion", nil, "alpha and beta must be non-nil")
	}
	if x == nil || w == nil {
		return quad.Invalid("output", nil, "x and w must be non-nil")
	}
	rec := quad.Recursion{Alpha: alpha.Data(), Beta: beta.Data(), Mu0: mu0}
	rule, err := gauss.GolubWelsch(rec, d.solver)
	if err != nil {
		return err
	}
	fill(rule, x, w)
	return nil
}

// VandermondeGQ solves for the weights on nodes x that reproduce moments q.
// The order is q.Len() and x must have the same length; w is resized.
func (d *Dispatcher) VandermondeGQ(x, w, q *array.Array1D[float64]) error {
	if x == nil || w == nil || q == nil {
		return quad.Invalid("vandermonde", nil, "x, w and q must be non-nil")
	}
	if x.Len() != q.Len() {
		return quad.Invalid("nodes", x.Len(), fmt.Sprintf("need %d to match moments", q.Len()))
	}
	weights, err := d.vander.Solve(x.Data(), q.Data())
	if err != nil {
		return err
	}
	w.Resize(len(weights))
	copy(w.Data(), weights)
	return nil
}

// GCHB fills x[:n] and w[:n] with the Chebyshev rule of the given kind (1 or 2).
func (d *Dispatcher) GCHB(kind, n int, x, w []float64) error {
	if kind != 1 && kind != 2 {
		return quad.Invalid("kind", kind, "chebyshev kind must be 1 or 2")
	}
	if err := checkBuffers(n, x, w); err != nil {
		return err
	}
	rule, err := gauss.Chebyshev(kind, n)
	if err != nil {
		return err
	}
	copy(x, rule.X)
	copy(w, rule.W)
	return nil
}

// Table builds the rules for several orders concurrently. The result is
// parallel to orders; the first failing order, by position, is reported.
func (d *Dispatcher) Table(f quad.Family, orders []int) ([]quad.Rule, error) {
	if len(orders) == 0 {
		return nil, quad.Invalid("orders", 0, "need at least one order")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rules := make([]quad.Rule, len(orders))
	errs := make([]error, len(orders))
	quad.ParallelFor(len(orders), 1, func(start, end int) {
		for i := start; i < end; i++ {
			rules[i], errs[i] = d.Rule(f, orders[i])
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", orders[i], err)
		}
	}
	return rules, nil
}

func checkBuffers(n int, x, w []float64) error {
	if n <= 0 {
		return quad.Invalid("order", n, "must be positive")
	}
	if len(x) < n || len(w) < n {
		return quad.Invalid("buffer", [2]int{len(x), len(w)}, fmt.Sprintf("need room for %d values", n))
	}
	return nil
}

func fill(r quad.Rule, x, w *array.Array1D[float64]) {
	x.Resize(r.Order())
	w.Resize(r.Order())
	copy(x.Data(), r.X)
	copy(w.Data(), r.W)
}
