package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/metrics"
	"github.com/san-kum/quadgen/internal/quad"
)

const (
	maxExplorerOrder = 200
	paramStep        = 0.25
	tableRows        = 12
)

// Explorer browses rules interactively. Every keystroke regenerates the
// rule through the dispatcher it was built with.
type Explorer struct {
	dispatcher    *gq.Dispatcher
	kinds         []quad.Kind
	cursor        int
	order         int
	a, b          float64
	theme         int
	rule          quad.Rule
	exactness     float64
	err           error
	width, height int
}

func NewExplorer(d *gq.Dispatcher, f quad.Family, order int) Explorer {
	m := Explorer{
		dispatcher: d,
		kinds:      quad.Kinds(),
		order:      max(order, 1),
		a:          f.A,
		b:          f.B,
		width:      80,
		height:     24,
	}
	for i, k := range m.kinds {
		if k == f.Kind {
			m.cursor = i
		}
	}
	m.regenerate()
	return m
}

func (m Explorer) Family() quad.Family {
	return quad.Family{Kind: m.kinds[m.cursor], A: m.a, B: m.b}
}

func (m Explorer) Order() int { return m.order }

func (m Explorer) Rule() quad.Rule { return m.rule }

func (m Explorer) Err() error { return m.err }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.kinds)-1 {
				m.cursor++
			}
		case "+", "=", "right", "l":
			if m.order < maxExplorerOrder {
				m.order++
			}
		case "-", "left", "h":
			if m.order > 1 {
				m.order--
			}
		case "a":
			m.a += paramStep
		case "A":
			m.a -= paramStep
		case "b":
			m.b += paramStep
		case "B":
			m.b -= paramStep
		case "t", "T":
			m.theme = (m.theme + 1) % len(Themes)
			return m, nil
		default:
			return m, nil
		}
		m.regenerate()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *Explorer) regenerate() {
	f := m.Family()
	m.rule, m.err = m.dispatcher.Rule(f, m.order)
	if m.err != nil {
		return
	}
	m.exactness, m.err = metrics.MomentError(m.rule, f, 2*m.order-1)
}

func (m Explorer) View() string {
	t := Themes[m.theme]
	p := newPalette(t)
	f := m.Family()

	var sb strings.Builder
	sb.WriteString(p.title.Render("quadgen explorer"))
	sb.WriteString(p.hint.Render("  " + t.Name))
	sb.WriteString("\n\n")

	for i, k := range m.kinds {
		line := fmt.Sprintf("  %d %s", int(k), k)
		if i == m.cursor {
			line = p.selected.Render("> " + line[2:])
		} else {
			line = p.label.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s%s  %s%s  %s%s\n\n",
		p.label.Render("n="), p.value.Render(fmt.Sprint(m.order)),
		p.label.Render("a="), p.value.Render(fmt.Sprintf("%g", f.A)),
		p.label.Render("b="), p.value.Render(fmt.Sprintf("%g", f.B)))

	if m.err != nil {
		sb.WriteString(p.negative.Render(m.err.Error()))
		sb.WriteString("\n")
	} else {
		shown := m.rule
		if shown.Order() > tableRows {
			shown = quad.Rule{X: m.rule.X[:tableRows], W: m.rule.W[:tableRows]}
		}
		sb.WriteString(RenderRule(shown, 12, t))
		if m.rule.Order() > tableRows {
			sb.WriteString(p.hint.Render(fmt.Sprintf("  ... %d more\n", m.rule.Order()-tableRows)))
		}
		sb.WriteString("\n")
		sb.WriteString(p.label.Render("weights "))
		sb.WriteString(Sparkline(m.rule.W, min(m.width-10, 60)))
		sb.WriteString("\n")
		sb.WriteString(RenderMetrics(map[string]float64{
			"exactness": m.exactness,
			"mass":      m.rule.Mass(),
		}, t))
	}

	sb.WriteString("\n")
	sb.WriteString(p.hint.Render("↑/↓ family  +/- order  a/A b/B shape  t theme  q quit"))
	return p.panel.Render(sb.String())
}
