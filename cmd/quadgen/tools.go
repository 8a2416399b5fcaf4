package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadgen/internal/config"
	"github.com/san-kum/quadgen/internal/experiment"
	"github.com/san-kum/quadgen/internal/ftn"
	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/viz"
)

func explore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, err := cfg.GetFamily()
	if err != nil {
		return err
	}
	d, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(viz.NewExplorer(d, f, cfg.Order), tea.WithAltScreen()).Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for family: %s\n", args[0])
		return nil
	}
	sort.Strings(presets)
	fmt.Printf("presets for %s:\n", args[0])
	for _, name := range presets {
		p := config.GetPreset(args[0], name)
		fmt.Printf("  %-10s n=%d a=%g b=%g solver=%s\n", name, p.Order, p.Alpha, p.Beta, p.Solver.Backend)
	}
	return nil
}

func listSymbols(cmd *cobra.Command, args []string) error {
	name := suffix
	if name == "" && configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		name = cfg.FtnSuffix
	}
	s, err := ftn.ParseSuffix(name)
	if err != nil {
		return err
	}

	fmt.Printf("suffix convention: %s (%q)\n\n", s, s.Underscores())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTINE\tSYMBOL\tREPLACED BY\tPURPOSE")
	for _, r := range ftn.Routines() {
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", r.Name, r.Signature, s.Symbol(r.Name), r.Backend, r.Purpose)
	}
	return w.Flush()
}

func benchSolvers(cmd *cobra.Command, args []string) error {
	name := "legendre"
	if len(args) > 0 {
		name = args[0]
	}
	reg := experiment.NewRegistry()
	f, err := reg.GetFamily(name, alpha, beta)
	if err != nil {
		return err
	}
	if order <= 0 {
		return quad.Invalid("order", order, "must be positive")
	}
	if iterations <= 0 {
		iterations = 1
	}

	fmt.Printf("benchmarking %s n=%d (%d rules per solver)\n\n", f, order, iterations)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tTOTAL\tPER RULE\tRULES/SEC")
	for _, sname := range reg.ListSolvers() {
		solver, err := reg.GetSolver(sname, 0)
		if err != nil {
			return err
		}
		d := gq.New(gq.WithSolver(solver))

		start := time.Now()
		for i := 0; i < iterations; i++ {
			t0 := time.Now()
			_, err := d.Rule(f, order)
			recorder.ObserveRule(f.Kind.String(), order, time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("%s: %w", sname, err)
			}
		}
		elapsed := time.Since(start)
		per := elapsed / time.Duration(iterations)
		fmt.Fprintf(w, "%s\t%v\t%v\t%.0f\n", sname, elapsed, per, float64(iterations)/elapsed.Seconds())
	}
	return w.Flush()
}
