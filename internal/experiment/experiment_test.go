package experiment

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/quad"
)

type countingObserver struct {
	ok, failed int
}

func (c *countingObserver) ObserveRule(_ string, _ int, _ time.Duration, err error) {
	if err != nil {
		c.failed++
		return
	}
	c.ok++
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.ListFamilies()
	if len(names) != 6 || names[0] != "legendre" || names[5] != "laguerre" {
		t.Errorf("families = %v", names)
	}

	f, err := r.GetFamily("5", 1, 2)
	if err != nil || f.Kind != quad.Jacobi {
		t.Errorf("GetFamily(5) = %v, %v", f, err)
	}
	if _, err := r.GetFamily("jacobi", -2, 0); !errors.Is(err, quad.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if _, err := r.GetFamily("7", 0, 0); !errors.Is(err, quad.ErrConfiguration) {
		t.Errorf("expected configuration error for kind 7, got %v", err)
	}

	for _, name := range r.ListSolvers() {
		s, err := r.GetSolver(name, 0)
		if err != nil {
			t.Fatalf("solver %s: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("solver %s reports name %s", name, s.Name())
		}
	}
	if _, err := r.GetSolver("jacobi", 10); err == nil {
		t.Error("expected unknown solver error")
	}
}

func TestExperiment_Run(t *testing.T) {
	reg := NewRegistry()
	f := quad.Family{Kind: quad.Legendre}

	e := New(Config{Family: f, Orders: []int{2, 4, 6}, Interval: []float64{0, 1}})
	if err := e.Setup(gq.New(), reg.DefaultMetrics(f)); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	obs := &countingObserver{}
	e.AddObserver(obs)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if obs.ok != 3 || obs.failed != 0 {
		t.Errorf("observer saw ok=%d failed=%d", obs.ok, obs.failed)
	}
	if res.Metrics["exactness"] > 1e-12 {
		t.Errorf("exactness = %g", res.Metrics["exactness"])
	}
	if res.Metrics["mass_drift"] > 1e-14 {
		t.Errorf("mass_drift = %g", res.Metrics["mass_drift"])
	}

	// rescaled onto [0,1]: mass 1 and integral of x^3 = 1/4
	for i, r := range res.Rules {
		if math.Abs(r.Mass()-1) > 1e-14 {
			t.Errorf("rule %d mass = %v", i, r.Mass())
		}
		got := r.Integrate(func(x float64) float64 { return x * x * x })
		if math.Abs(got-0.25) > 1e-14 {
			t.Errorf("rule %d integral of x^3 = %v", i, got)
		}
	}
}

func TestExperiment_Failures(t *testing.T) {
	e := New(Config{Family: quad.Family{Kind: quad.Hermite}, Orders: []int{3}, Interval: []float64{0, 1}})
	if err := e.Setup(gq.New(), nil); !errors.Is(err, quad.ErrConfiguration) {
		t.Errorf("hermite on an interval: got %v", err)
	}

	for _, iv := range [][]float64{{1, 0}, {0.5, 0.5}, {0, math.Inf(1)}} {
		e = New(Config{Family: quad.Family{Kind: quad.Legendre}, Orders: []int{3}, Interval: iv})
		if err := e.Setup(gq.New(), nil); !errors.Is(err, quad.ErrConfiguration) {
			t.Errorf("interval %v: got %v", iv, err)
		}
	}

	e = New(Config{Family: quad.Family{Kind: quad.Legendre}, Orders: []int{3, -1}})
	if err := e.Setup(gq.New(), nil); err != nil {
		t.Fatal(err)
	}
	obs := &countingObserver{}
	e.AddObserver(obs)
	if _, err := e.Run(context.Background()); !errors.Is(err, quad.ErrConfiguration) {
		t.Errorf("negative order: got %v", err)
	}
	if obs.ok != 1 || obs.failed != 1 {
		t.Errorf("observer saw ok=%d failed=%d", obs.ok, obs.failed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled run: got %v", err)
	}

	if _, err := New(Config{}).Run(context.Background()); err == nil {
		t.Error("expected error when not set up")
	}
}
