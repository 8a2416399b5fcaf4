package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/storage"
	"github.com/san-kum/quadgen/internal/viz"
)

func listRules(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no rules found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFAMILY\tN\tTIME\tSOLVER\tINTERVAL")

	for _, run := range runs {
		iv := "-"
		if len(run.Interval) == 2 {
			iv = fmt.Sprintf("[%g, %g]", run.Interval[0], run.Interval[1])
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			run.ID,
			describe(run),
			run.Order,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Solver,
			iv,
		)
	}

	return w.Flush()
}

func showRule(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rule, err := st.LoadRuleBinary(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("rule: %s\n", meta.ID)
	fmt.Printf("family: %s\n", describe(*meta))
	fmt.Printf("created: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Print(viz.RenderRule(rule, precision, viz.ThemeMinimal))
	if len(meta.Metrics) > 0 {
		fmt.Println("\nmetrics:")
		fmt.Print(viz.RenderMetrics(meta.Metrics, viz.ThemeMinimal))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	rule, err := storage.New(dataDir).LoadRule(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, rule)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rule, err := st.LoadRule(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, rule)
}

func plotRules(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	rules := make([]quad.Rule, 0, len(args))
	labels := make([]string, 0, len(args))
	for _, id := range args {
		meta, err := st.Load(id)
		if err != nil {
			return err
		}
		rule, err := st.LoadRuleBinary(id)
		if err != nil {
			return err
		}
		rules = append(rules, rule)
		labels = append(labels, fmt.Sprintf("%s n=%d", describe(*meta), meta.Order))
	}

	if plotOut != "" {
		if err := viz.SavePlot(plotOut, strings.Join(labels, ", "), rules, labels); err != nil {
			return err
		}
		fmt.Printf("plot written to %s\n", plotOut)
		return nil
	}

	for i, rule := range rules {
		fmt.Println(viz.PlotWeights(rule, 80, 10, "weights: "+labels[i]))
		fmt.Println()
		if rule.Order() > 2 {
			fmt.Println(viz.PlotLogWeights(rule, 80, 10, "log10 weights: "+labels[i]))
			fmt.Println()
		}
	}
	return nil
}
