package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadgen/internal/array"
	"github.com/san-kum/quadgen/internal/config"
	"github.com/san-kum/quadgen/internal/experiment"
	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/metrics"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/storage"
	"github.com/san-kum/quadgen/internal/vandermonde"
)

func runExperiment(cfg *config.Config, f quad.Family, ns []int, withInterval bool) (*experiment.Result, error) {
	d, err := newDispatcher(cfg)
	if err != nil {
		return nil, err
	}

	ecfg := experiment.Config{Family: f, Orders: ns}
	if withInterval {
		ecfg.Interval = cfg.Interval
	}
	exp := experiment.New(ecfg)
	if err := exp.Setup(d, experiment.NewRegistry().DefaultMetrics(f)); err != nil {
		return nil, err
	}
	exp.AddObserver(recorder)

	logrus.WithFields(logrus.Fields{
		"family": f.String(),
		"orders": ns,
		"solver": cfg.Solver.Backend,
	}).Debug("generating")
	return exp.Run(context.Background())
}

func genRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, err := cfg.GetFamily()
	if err != nil {
		return err
	}

	res, err := runExperiment(cfg, f, []int{cfg.Order}, true)
	if err != nil {
		return err
	}
	rule := res.Rules[0]
	logrus.WithField("elapsed", res.Elapsed).Debug("rule generated")

	meta := storage.RuleMetadata{
		Family:   f.Kind.String(),
		A:        f.A,
		B:        f.B,
		Order:    rule.Order(),
		Solver:   solverName(f, cfg.Solver.Backend),
		Interval: cfg.Interval,
		Metrics:  res.Metrics,
	}
	if save {
		if err := saveRule(meta, rule); err != nil {
			return err
		}
	}
	return printRule(cfg, meta, rule, res.Metrics)
}

// solverName records which path produced a rule; Chebyshev kinds never
// touch the eigensolver.
func solverName(f quad.Family, backend string) string {
	if f.Kind == quad.Chebyshev1 || f.Kind == quad.Chebyshev2 {
		return "closed-form"
	}
	return backend
}

func customRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	rec, err := config.LoadRecursion(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	d, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	x, w := array.New[float64](0), array.New[float64](0)
	start := time.Now()
	err = d.GQGen(array.From(rec.Alpha), array.From(rec.Beta), rec.Mu0, x, w)
	recorder.ObserveRule("custom", rec.Order(), time.Since(start), err)
	if err != nil {
		return err
	}
	rule := quad.Rule{X: x.Data(), W: w.Data()}

	scores := metrics.Evaluate([]quad.Rule{rule}, metrics.NewMassDrift(rec.Mu0), metrics.NewMinWeight(), metrics.NewMinSpacing())
	meta := storage.RuleMetadata{Family: "custom", Order: rule.Order(), Solver: cfg.Solver.Backend, Metrics: scores}
	if save {
		if err := saveRule(meta, rule); err != nil {
			return err
		}
	}
	return printRule(cfg, meta, rule, scores)
}

func chebyshevRule(cmd *cobra.Command, args []string) error {
	kind, err := strconv.Atoi(args[0])
	if err != nil {
		return quad.Invalid("kind", args[0], "chebyshev kind must be 1 or 2")
	}
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	x, w := make([]float64, max(order, 0)), make([]float64, max(order, 0))
	start := time.Now()
	err = gq.GCHB(kind, order, x, w)
	recorder.ObserveRule(fmt.Sprintf("chebyshev%d", kind), order, time.Since(start), err)
	if err != nil {
		return err
	}
	meta := storage.RuleMetadata{Family: fmt.Sprintf("chebyshev%d", kind), Order: order, Solver: "closed-form"}
	return printRule(cfg, meta, quad.Rule{X: x, W: w}, nil)
}

func vandermondeRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	d, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	w := array.New[float64](0)
	start := time.Now()
	err = d.VandermondeGQ(array.From(nodes), w, array.From(moments))
	recorder.ObserveRule("vandermonde", len(moments), time.Since(start), err)
	if err != nil {
		return err
	}
	rule := quad.Rule{X: append([]float64(nil), nodes...), W: w.Data()}

	meta := storage.RuleMetadata{Family: "vandermonde", Order: rule.Order()}
	if save {
		if err := saveRule(meta, rule); err != nil {
			return err
		}
	}
	return printRule(cfg, meta, rule, nil)
}

func newtonCotesRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	rule, err := vandermonde.New(cfg.Vandermonde.MaxCondition).NewtonCotes(order, lo, hi, !open)
	recorder.ObserveRule("newton-cotes", order, time.Since(start), err)
	if err != nil {
		return err
	}

	meta := storage.RuleMetadata{Family: "newton-cotes", Order: rule.Order(), Interval: []float64{lo, hi}}
	if save {
		if err := saveRule(meta, rule); err != nil {
			return err
		}
	}
	return printRule(cfg, meta, rule, nil)
}

func clenshawCurtisRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	rule, err := vandermonde.ClenshawCurtis(order)
	if err == nil {
		rule, err = rule.Rescale(lo, hi)
	}
	recorder.ObserveRule("clenshaw-curtis", order, time.Since(start), err)
	if err != nil {
		return err
	}

	meta := storage.RuleMetadata{Family: "clenshaw-curtis", Order: rule.Order(), Interval: []float64{lo, hi}}
	if save {
		if err := saveRule(meta, rule); err != nil {
			return err
		}
	}
	return printRule(cfg, meta, rule, nil)
}

func verifyFamily(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, err := cfg.GetFamily()
	if err != nil {
		return err
	}
	if maxOrder <= 0 {
		return quad.Invalid("max-order", maxOrder, "must be positive")
	}

	ns := make([]int, maxOrder)
	for i := range ns {
		ns[i] = i + 1
	}
	res, err := runExperiment(cfg, f, ns, false)
	if err != nil {
		return err
	}

	mu0, err := metrics.Moment(f, 0)
	if err != nil {
		return err
	}

	const tol = 1e-10
	failed := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tEXACTNESS\tMASS DRIFT\tMIN WEIGHT\tMIN SPACING\tSTATUS")
	for i, rule := range res.Rules {
		exact, err := metrics.MomentError(rule, f, 2*rule.Order()-1)
		if err != nil {
			return err
		}
		row := metrics.Evaluate([]quad.Rule{rule},
			metrics.NewMassDrift(mu0),
			metrics.NewMinWeight(),
			metrics.NewMinSpacing(),
		)
		status := "ok"
		if !(exact < tol) || !(row["min_weight"] > 0) || !(row["min_spacing"] > 0) {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%d\t%.2e\t%.2e\t%.3e\t%.3e\t%s\n",
			ns[i], exact, row["mass_drift"], row["min_weight"], row["min_spacing"], status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s: worst exactness %.2e over orders 1..%d (%s solver)\n",
		f, res.Metrics["exactness"], maxOrder, solverName(f, cfg.Solver.Backend))
	if failed > 0 {
		return fmt.Errorf("%d of %d orders failed verification", failed, maxOrder)
	}
	return nil
}

func tableRules(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, err := cfg.GetFamily()
	if err != nil {
		return err
	}

	res, err := runExperiment(cfg, f, orders, false)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tX[0]\tX[N-1]\tMASS\tMIN WEIGHT")
	for i, rule := range res.Rules {
		minW := metrics.NewMinWeight()
		minW.Observe(rule)
		fmt.Fprintf(w, "%d\t%.10f\t%.10f\t%.12f\t%.3e\n",
			res.Orders[i], rule.X[0], rule.X[rule.Order()-1], rule.Mass(), minW.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d rules in %v\n", len(res.Rules), res.Elapsed)

	if save {
		for _, rule := range res.Rules {
			meta := storage.RuleMetadata{
				Family: f.Kind.String(),
				A:      f.A,
				B:      f.B,
				Solver: solverName(f, cfg.Solver.Backend),
			}
			if err := saveRule(meta, rule); err != nil {
				return err
			}
		}
	}
	return nil
}
