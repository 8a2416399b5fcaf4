package viz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/quad"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Explorer, keys ...string) Explorer {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Explorer)
	}
	return m
}

func TestRenderRule(t *testing.T) {
	out := RenderRule(quad.Rule{X: []float64{-0.5, 0.5}, W: []float64{1, -1}}, 4, ThemeMinimal)
	if !strings.Contains(out, "5.0000e-01") {
		t.Errorf("missing node in:\n%s", out)
	}
	if !strings.Contains(out, "-1.0000e+00") {
		t.Errorf("missing negative weight in:\n%s", out)
	}
}

func TestRenderMetrics(t *testing.T) {
	out := RenderMetrics(map[string]float64{"mass_drift": 0, "exactness": 1e-16}, ThemeMinimal)
	if strings.Index(out, "exactness") > strings.Index(out, "mass_drift") {
		t.Errorf("metrics not sorted:\n%s", out)
	}
}

func TestPlotWeights(t *testing.T) {
	if PlotWeights(quad.Rule{}, 40, 5, "") != "" {
		t.Error("empty rule should render nothing")
	}
	out := PlotWeights(quad.Rule{X: []float64{0}, W: []float64{2}}, 40, 5, "n=1")
	if !strings.Contains(out, "n=1") {
		t.Errorf("caption missing:\n%s", out)
	}
	if PlotLogWeights(quad.Rule{X: []float64{0}, W: []float64{-1}}, 40, 5, "") != "" {
		t.Error("log plot of negative weights should be empty")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}, 2); got != "▁█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty Sparkline = %q", got)
	}
}

func TestSavePlot(t *testing.T) {
	dir := t.TempDir()
	rules := []quad.Rule{
		{X: []float64{-0.5, 0.5}, W: []float64{1, 1}},
		{X: []float64{-0.7, 0, 0.7}, W: []float64{0.5, 0.9, 0.5}},
	}

	path := filepath.Join(dir, "weights.png")
	if err := SavePlot(path, "legendre", rules, []string{"two"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("plot not written: %v", err)
	}

	if err := SavePlot(filepath.Join(dir, "weights.txt"), "", rules, nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if err := SavePlot(path, "", nil, nil); err == nil {
		t.Error("expected error for no rules")
	}
}

func TestExplorer(t *testing.T) {
	m := NewExplorer(gq.New(), quad.Family{Kind: quad.Legendre}, 3)
	if m.Err() != nil || m.Rule().Order() != 3 {
		t.Fatalf("initial rule: order %d err %v", m.Rule().Order(), m.Err())
	}

	m = press(m, "+", "+", "down")
	if m.Order() != 5 || m.Family().Kind != quad.Chebyshev1 {
		t.Errorf("after keys: order %d family %v", m.Order(), m.Family())
	}
	if m.Rule().Order() != 5 {
		t.Errorf("rule not regenerated: order %d", m.Rule().Order())
	}

	m = press(m, "-", "-", "-", "-", "-")
	if m.Order() != 1 {
		t.Errorf("order should stop at 1, got %d", m.Order())
	}

	// jacobi with a pushed below -1
	m = press(m, "down", "down", "down", "A", "A", "A", "A", "A")
	if m.Family().Kind != quad.Jacobi {
		t.Fatalf("expected jacobi, got %v", m.Family())
	}
	if !errors.Is(m.Err(), quad.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", m.Err())
	}
	if !strings.Contains(m.View(), "jacobi requires a > -1") {
		t.Errorf("error not shown in view")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}
