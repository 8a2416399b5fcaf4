package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadgen/internal/config"
	"github.com/san-kum/quadgen/internal/experiment"
	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/storage"
	"github.com/san-kum/quadgen/internal/viz"
)

// resolveConfig layers defaults, the config file, a preset and finally any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logrus.WithField("path", configFile).Debug("config loaded")
	}
	if len(args) > 0 {
		cfg.Family = args[0]
	}

	if preset != "" && cmd.Flags().Lookup("preset") != nil {
		p := config.GetPreset(cfg.Family, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Family))
		}
		clone := *p
		clone.Interval = append([]float64(nil), p.Interval...)
		cfg = &clone
	}

	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("alpha") {
		cfg.Alpha = alpha
	}
	if flags.Changed("beta") {
		cfg.Beta = beta
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("solver") {
		cfg.Solver.Backend = backend
	}
	if flags.Changed("max-iter") {
		cfg.Solver.MaxIter = maxIter
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDispatcher(cfg *config.Config) (*gq.Dispatcher, error) {
	solver, err := experiment.NewRegistry().GetSolver(cfg.Solver.Backend, cfg.Solver.MaxIter)
	if err != nil {
		return nil, err
	}
	return gq.New(gq.WithSolver(solver), gq.WithMaxCondition(cfg.Vandermonde.MaxCondition)), nil
}

func printRule(cfg *config.Config, meta storage.RuleMetadata, rule quad.Rule, scores map[string]float64) error {
	switch cfg.Output.Format {
	case "csv":
		return storage.WriteCSV(os.Stdout, rule)
	case "json":
		meta.Metrics = scores
		return storage.ExportJSON(os.Stdout, meta, rule)
	}

	theme := viz.ThemeMinimal
	fmt.Printf("%s  n=%d\n\n", describe(meta), rule.Order())
	fmt.Print(viz.RenderRule(rule, cfg.Output.Precision, theme))
	if len(scores) > 0 {
		fmt.Println("\nmetrics:")
		fmt.Print(viz.RenderMetrics(scores, theme))
	}
	return nil
}

func describe(meta storage.RuleMetadata) string {
	switch meta.Family {
	case "jacobi":
		return fmt.Sprintf("jacobi(a=%g,b=%g)", meta.A, meta.B)
	case "laguerre":
		return fmt.Sprintf("laguerre(a=%g)", meta.A)
	default:
		return meta.Family
	}
}

func saveRule(meta storage.RuleMetadata, rule quad.Rule) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(meta, rule)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "rule id: %s\n", id)
	return nil
}
