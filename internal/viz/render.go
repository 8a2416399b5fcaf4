package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quadgen/internal/quad"
)

// RenderRule formats the rule as an index/node/weight table. Negative
// weights, which only Vandermonde rules can produce, are highlighted.
func RenderRule(r quad.Rule, precision int, t Theme) string {
	p := newPalette(t)
	if precision < 1 {
		precision = 16
	}
	width := precision + 8

	var sb strings.Builder
	sb.WriteString(p.header.Render(fmt.Sprintf("%4s  %*s  %*s", "i", width, "x", width, "w")))
	sb.WriteString("\n")
	for i := range r.X {
		w := fmt.Sprintf("%*.*e", width, precision, r.W[i])
		if r.W[i] < 0 {
			w = p.negative.Render(w)
		} else {
			w = p.positive.Render(w)
		}
		fmt.Fprintf(&sb, "%4d  %*.*e  %s\n", i, width, precision, r.X[i], w)
	}
	return sb.String()
}

// RenderMetrics formats name/value pairs sorted by name.
func RenderMetrics(values map[string]float64, t Theme) string {
	p := newPalette(t)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(p.label.Render(fmt.Sprintf("  %-12s", name)))
		sb.WriteString(p.value.Render(fmt.Sprintf("%.3e", values[name])))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PlotWeights draws the weights against node index.
func PlotWeights(r quad.Rule, width, height int, caption string) string {
	if r.Order() == 0 {
		return ""
	}
	data := r.W
	if r.Order() == 1 {
		// asciigraph needs two points to draw a line
		data = []float64{r.W[0], r.W[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotLogWeights plots log10 of the weights, which makes the tails of
// Hermite and Laguerre rules visible. Non-positive weights are skipped.
func PlotLogWeights(r quad.Rule, width, height int, caption string) string {
	data := make([]float64, 0, r.Order())
	for _, w := range r.W {
		if w > 0 {
			data = append(data, math.Log10(w))
		}
	}
	if len(data) == 0 {
		return ""
	}
	return PlotWeights(quad.Rule{X: make([]float64, len(data)), W: data}, width, height, caption)
}
