package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/quadgen/internal/metrics"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/tridiag"
)

type Registry struct {
	families map[string]quad.Kind
	solvers  map[string]func(maxIter int) tridiag.Solver
}

func NewRegistry() *Registry {
	r := &Registry{
		families: make(map[string]quad.Kind),
		solvers:  make(map[string]func(int) tridiag.Solver),
	}

	for _, k := range quad.Kinds() {
		r.families[k.String()] = k
	}

	r.solvers["ql"] = func(maxIter int) tridiag.Solver { return tridiag.NewQL(maxIter) }
	r.solvers["lapack"] = func(int) tridiag.Solver { return tridiag.NewLAPACK() }

	return r
}

// GetFamily accepts a family name or kind code.
func (r *Registry) GetFamily(name string, a, b float64) (quad.Family, error) {
	k, ok := r.families[name]
	if !ok {
		var err error
		if k, err = quad.ParseKind(name); err != nil {
			return quad.Family{}, err
		}
	}
	f := quad.Family{Kind: k, A: a, B: b}
	return f, f.Validate()
}

func (r *Registry) GetSolver(name string, maxIter int) (tridiag.Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	if maxIter <= 0 {
		maxIter = tridiag.DefaultMaxIter
	}
	return fn(maxIter), nil
}

func (r *Registry) ListFamilies() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return r.families[names[i]] < r.families[names[j]] })
	return names
}

func (r *Registry) ListSolvers() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns fresh quality metrics for rules of family f.
func (r *Registry) DefaultMetrics(f quad.Family) []metrics.Metric {
	mu0, err := metrics.Moment(f, 0)
	ms := []metrics.Metric{
		metrics.NewExactness(f),
		metrics.NewMinWeight(),
		metrics.NewMinSpacing(),
	}
	if err == nil {
		ms = append(ms, metrics.NewMassDrift(mu0))
	}
	return ms
}
