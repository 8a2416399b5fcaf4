package viz

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/quadgen/internal/quad"
)

// SavePlot draws each rule as weight-versus-node points joined by lines and
// writes the chart to path. The extension picks the format (png, svg, pdf).
func SavePlot(path, title string, rules []quad.Rule, labels []string) error {
	if len(rules) == 0 {
		return fmt.Errorf("viz: no rules to plot")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps":
	default:
		return fmt.Errorf("viz: unsupported plot format %q", filepath.Ext(path))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "w"
	p.Add(plotter.NewGrid())

	for i, r := range rules {
		pts := make(plotter.XYs, r.Order())
		for j := range r.X {
			pts[j].X = r.X[j]
			pts[j].Y = r.W[j]
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)

		label := fmt.Sprintf("n=%d", r.Order())
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		p.Legend.Add(label, line, points)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
