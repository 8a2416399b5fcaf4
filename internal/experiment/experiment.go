package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/metrics"
	"github.com/san-kum/quadgen/internal/quad"
)

type Config struct {
	Family   quad.Family
	Orders   []int
	Interval []float64
}

// Observer is notified once per generated order.
type Observer interface {
	ObserveRule(family string, order int, elapsed time.Duration, err error)
}

type Result struct {
	Family  quad.Family
	Orders  []int
	Rules   []quad.Rule
	Metrics map[string]float64
	Elapsed time.Duration
}

type Experiment struct {
	cfg        Config
	dispatcher *gq.Dispatcher
	metrics    []metrics.Metric
	observers  []Observer
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(d *gq.Dispatcher, ms []metrics.Metric) error {
	if d == nil {
		return fmt.Errorf("experiment: nil dispatcher")
	}
	if len(e.cfg.Orders) == 0 {
		return quad.Invalid("orders", 0, "need at least one order")
	}
	if len(e.cfg.Interval) != 0 {
		if len(e.cfg.Interval) != 2 {
			return quad.Invalid("interval", e.cfg.Interval, "need exactly two bounds")
		}
		if lo, hi := e.cfg.Family.Support(); lo != -1 || hi != 1 {
			return quad.Invalid("interval", e.cfg.Interval, e.cfg.Family.String()+" is not defined on [-1, 1]")
		}
		if err := quad.CheckInterval(e.cfg.Interval[0], e.cfg.Interval[1]); err != nil {
			return err
		}
	}
	e.dispatcher = d
	e.metrics = ms
	return nil
}

func (e *Experiment) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Run generates every order, scores the rules on the family's own support,
// and only then rescales them onto the configured interval.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.dispatcher == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	rules := make([]quad.Rule, len(e.cfg.Orders))
	errs := make([]error, len(e.cfg.Orders))
	took := make([]time.Duration, len(e.cfg.Orders))

	quad.ParallelFor(len(e.cfg.Orders), 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				continue
			}
			t0 := time.Now()
			rules[i], errs[i] = e.dispatcher.Rule(e.cfg.Family, e.cfg.Orders[i])
			took[i] = time.Since(t0)
		}
	})

	name := e.cfg.Family.Kind.String()
	for i, n := range e.cfg.Orders {
		for _, o := range e.observers {
			o.ObserveRule(name, n, took[i], errs[i])
		}
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", e.cfg.Orders[i], err)
		}
	}

	scores := metrics.Evaluate(rules, e.metrics...)

	if len(e.cfg.Interval) == 2 {
		for i := range rules {
			r, err := rules[i].Rescale(e.cfg.Interval[0], e.cfg.Interval[1])
			if err != nil {
				return nil, err
			}
			rules[i] = r
		}
	}

	return &Result{
		Family:  e.cfg.Family,
		Orders:  append([]int(nil), e.cfg.Orders...),
		Rules:   rules,
		Metrics: scores,
		Elapsed: time.Since(start),
	}, nil
}
