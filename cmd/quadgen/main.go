package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadgen/internal/telemetry"
)

var (
	dataDir     string
	configFile  string
	verbose     bool
	metricsFile string

	order     int
	alpha     float64
	beta      float64
	interval  []float64
	backend   string
	maxIter   int
	format    string
	precision int
	preset    string
	save      bool

	orders   []int
	maxOrder int

	nodes   []float64
	moments []float64
	lo, hi  float64
	open    bool

	plotOut    string
	suffix     string
	iterations int

	recorder = telemetry.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "quadgen",
		Short:         "gauss quadrature rule generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".quadgen", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")

	genCmd := &cobra.Command{
		Use:   "gen [family]",
		Short: "generate a classical gauss rule",
		Long:  "families: legendre, chebyshev1, chebyshev2, hermite, jacobi, laguerre (or kind codes 1-6)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  genRule,
	}
	addRuleFlags(genCmd)
	genCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	genCmd.Flags().Float64SliceVar(&interval, "interval", nil, "rescale onto [lo,hi] (legendre, chebyshev, jacobi)")
	genCmd.Flags().BoolVar(&save, "save", false, "store the rule in the data directory")

	customCmd := &cobra.Command{
		Use:   "custom [recursion.yaml]",
		Short: "golub-welsch on a user-supplied recursion",
		Args:  cobra.ExactArgs(1),
		RunE:  customRule,
	}
	customCmd.Flags().StringVar(&backend, "solver", "ql", "eigensolver backend (ql, lapack)")
	customCmd.Flags().IntVar(&maxIter, "max-iter", 30, "eigensolver iterations per eigenvalue")
	customCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	customCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")
	customCmd.Flags().BoolVar(&save, "save", false, "store the rule in the data directory")

	chebCmd := &cobra.Command{
		Use:   "chebyshev [kind]",
		Short: "closed-form gauss-chebyshev rule (kind 1 or 2)",
		Args:  cobra.ExactArgs(1),
		RunE:  chebyshevRule,
	}
	chebCmd.Flags().IntVarP(&order, "order", "n", 8, "number of nodes")
	chebCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	chebCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")

	vanderCmd := &cobra.Command{
		Use:   "vandermonde",
		Short: "weights for prescribed nodes and moments",
		Args:  cobra.NoArgs,
		RunE:  vandermondeRule,
	}
	vanderCmd.Flags().Float64SliceVar(&nodes, "nodes", nil, "node abscissas")
	vanderCmd.Flags().Float64SliceVar(&moments, "moments", nil, "target moments q_0..q_{n-1}")
	vanderCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	vanderCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")
	vanderCmd.Flags().BoolVar(&save, "save", false, "store the rule in the data directory")
	_ = vanderCmd.MarkFlagRequired("nodes")
	_ = vanderCmd.MarkFlagRequired("moments")

	ncCmd := &cobra.Command{
		Use:   "newton-cotes",
		Short: "equally spaced rule for weight 1 on [lo,hi]",
		Args:  cobra.NoArgs,
		RunE:  newtonCotesRule,
	}
	ncCmd.Flags().IntVarP(&order, "order", "n", 3, "number of nodes")
	ncCmd.Flags().Float64Var(&lo, "lo", -1, "lower bound")
	ncCmd.Flags().Float64Var(&hi, "hi", 1, "upper bound")
	ncCmd.Flags().BoolVar(&open, "open", false, "exclude the endpoints")
	ncCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	ncCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")
	ncCmd.Flags().BoolVar(&save, "save", false, "store the rule in the data directory")

	ccCmd := &cobra.Command{
		Use:   "clenshaw-curtis",
		Short: "clenshaw-curtis rule for weight 1 on [lo,hi]",
		Args:  cobra.NoArgs,
		RunE:  clenshawCurtisRule,
	}
	ccCmd.Flags().IntVarP(&order, "order", "n", 9, "number of nodes")
	ccCmd.Flags().Float64Var(&lo, "lo", -1, "lower bound")
	ccCmd.Flags().Float64Var(&hi, "hi", 1, "upper bound")
	ccCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	ccCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")
	ccCmd.Flags().BoolVar(&save, "save", false, "store the rule in the data directory")

	verifyCmd := &cobra.Command{
		Use:   "verify [family]",
		Short: "check exactness, positivity and ordering for orders 1..max",
		Args:  cobra.MaximumNArgs(1),
		RunE:  verifyFamily,
	}
	addShapeFlags(verifyCmd)
	verifyCmd.Flags().IntVar(&maxOrder, "max-order", 20, "highest order to check")

	tableCmd := &cobra.Command{
		Use:   "table [family]",
		Short: "generate several orders in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tableRules,
	}
	addShapeFlags(tableCmd)
	tableCmd.Flags().IntSliceVar(&orders, "orders", []int{2, 4, 8, 16}, "orders to generate")
	tableCmd.Flags().BoolVar(&save, "save", false, "store every rule in the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored rules",
		RunE:  listRules,
	}

	showCmd := &cobra.Command{
		Use:   "show [rule_id]",
		Short: "print a stored rule",
		Args:  cobra.ExactArgs(1),
		RunE:  showRule,
	}
	showCmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [rule_id]",
		Short: "export a stored rule to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [rule_id]",
		Short: "export a stored rule to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [rule_id...]",
		Short: "plot weights of stored rules",
		Args:  cobra.MinimumNArgs(1),
		RunE:  plotRules,
	}
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "write an image (png, svg, pdf) instead of a terminal plot")

	exploreCmd := &cobra.Command{
		Use:   "explore [family]",
		Short: "browse rules interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  explore,
	}
	addShapeFlags(exploreCmd)
	exploreCmd.Flags().IntVarP(&order, "order", "n", 5, "initial order")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list available presets for a family",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	symbolsCmd := &cobra.Command{
		Use:   "symbols",
		Short: "list legacy fortran routines and their link symbols",
		Args:  cobra.NoArgs,
		RunE:  listSymbols,
	}
	symbolsCmd.Flags().StringVar(&suffix, "suffix", "", "underscore convention (wsu, wdu)")

	benchCmd := &cobra.Command{
		Use:   "bench [family]",
		Short: "time rule generation with each eigensolver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchSolvers,
	}
	benchCmd.Flags().IntVarP(&order, "order", "n", 64, "number of nodes")
	benchCmd.Flags().Float64Var(&alpha, "alpha", 0, "shape parameter a")
	benchCmd.Flags().Float64Var(&beta, "beta", 0, "shape parameter b")
	benchCmd.Flags().IntVar(&iterations, "iterations", 200, "rules per solver")

	rootCmd.AddCommand(genCmd, customCmd, chebCmd, vanderCmd, ncCmd, ccCmd, verifyCmd, tableCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, plotCmd, exploreCmd, presetsCmd, symbolsCmd, benchCmd)

	err := rootCmd.Execute()
	if metricsFile != "" {
		if werr := recorder.WriteFile(metricsFile); werr != nil {
			logrus.WithError(werr).WithField("path", metricsFile).Warn("could not write metrics")
		}
	}
	if err != nil {
		logrus.WithError(err).Error("quadgen failed")
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "shape parameter a (jacobi, laguerre)")
	cmd.Flags().Float64Var(&beta, "beta", 0, "shape parameter b (jacobi)")
	cmd.Flags().StringVar(&backend, "solver", "ql", "eigensolver backend (ql, lapack)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 30, "eigensolver iterations per eigenvalue")
}

func addRuleFlags(cmd *cobra.Command) {
	addShapeFlags(cmd)
	cmd.Flags().IntVarP(&order, "order", "n", 8, "number of nodes")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	cmd.Flags().IntVar(&precision, "precision", 16, "mantissa digits in table output")
}
