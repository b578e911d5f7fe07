// Package tui provides an interactive terminal explorer for the
// capacitance-to-coupling relationship: nudge matrix entries and watch
// the coupling coefficient respond.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/temcouple/internal/config"
	"github.com/san-kum/temcouple/internal/coupling"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

const historyCap = 120

// nudgeFactor is the multiplicative step applied by left/right keys.
const nudgeFactor = 1.05

type param struct {
	name  string
	value float64
}

type model struct {
	params  []param // c11, c12, c22, eps_r
	initial []param
	cursor  int

	opts    coupling.Options
	result  *coupling.Result
	err     error
	history []float64

	width  int
	height int
}

// NewInteractiveApp seeds the explorer from a config (preset or file).
func NewInteractiveApp(cfg *config.Config) tea.Model {
	c := cfg.Capacitance
	if c.C11 == 0 && c.C22 == 0 {
		// Empty config: start from the ribbon example.
		c = config.GetPreset("ribbon").Capacitance
	}

	params := []param{
		{"c11", c.C11},
		{"c12", c.C12},
		{"c22", c.C22},
		{"eps_r", cfg.Medium.EpsR},
	}

	m := model{
		params:  params,
		initial: append([]param(nil), params...),
		opts:    cfg.Options(),
		history: make([]float64, 0, historyCap),
		width:   80,
		height:  24,
	}
	m.recompute()
	return m
}

// Run starts the explorer in the alternate screen.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewInteractiveApp(cfg), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m *model) recompute() {
	epsR := m.params[3].value
	m.opts.Constants = coupling.Medium(epsR, 1.0)

	m.result, m.err = coupling.Analyze(m.params[0].value, m.params[1].value, m.params[2].value, m.opts)
	if m.err == nil {
		m.history = append(m.history, m.result.K)
		if len(m.history) > historyCap {
			m.history = m.history[len(m.history)-historyCap:]
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.params)-1 {
			m.cursor++
		}
	case "right", "l":
		m.nudge(nudgeFactor)
	case "left", "h":
		m.nudge(1 / nudgeFactor)
	case "s":
		// Sign flip only makes sense for the mutual term.
		if m.params[m.cursor].name == "c12" {
			m.params[m.cursor].value = -m.params[m.cursor].value
			m.recompute()
		}
	case "r":
		copy(m.params, m.initial)
		m.history = m.history[:0]
		m.recompute()
	}
	return m, nil
}

func (m *model) nudge(factor float64) {
	p := &m.params[m.cursor]
	if p.value == 0 {
		// Multiplicative steps cannot leave zero; seed a small value.
		p.value = 1e-15
	} else {
		p.value *= factor
	}
	m.recompute()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Bold(true).Render("temcouple explorer") + "\n\n")

	for i, p := range m.params {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = "> "
			style = yellow
		}
		unit := "F/m"
		if p.name == "eps_r" {
			unit = ""
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			marker,
			dim.Render(fmt.Sprintf("%-6s", p.name)),
			style.Render(fmt.Sprintf("%12.4e", p.value)),
			dim.Render(unit),
		))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(red.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
	} else {
		r := m.result
		b.WriteString(fmt.Sprintf("%s %s\n", dim.Render("L11"), white.Render(fmt.Sprintf("%.4e H/m", r.L11))))
		b.WriteString(fmt.Sprintf("%s %s\n", dim.Render("L22"), white.Render(fmt.Sprintf("%.4e H/m", r.L22))))
		b.WriteString(fmt.Sprintf("%s %s\n", dim.Render("M  "), white.Render(fmt.Sprintf("%.4e H/m", r.M))))

		kStyle := green
		if math.Abs(r.K) >= m.opts.Bands.Moderate {
			kStyle = red
		} else if math.Abs(r.K) >= m.opts.Bands.Weak {
			kStyle = yellow
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", dim.Render("k  "),
			kStyle.Bold(true).Render(fmt.Sprintf("%.4e", r.K)),
			kStyle.Render(r.Interpretation)))

		if r.Anomalous {
			b.WriteString(red.Render("|k| > 1: input data is not physically realizable") + "\n")
		}
	}

	if len(m.history) > 1 {
		b.WriteString("\n" + asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(min(m.width-12, 70)),
			asciigraph.Caption("k history"),
		) + "\n")
	}

	b.WriteString("\n" + dim.Render("↑/↓ select  ←/→ nudge  s flip sign  r reset  q quit"))

	return panelStyle.Render(b.String())
}
