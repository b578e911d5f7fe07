// Package report renders analysis results for the terminal. The core
// never prints; everything presentational lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/temcouple/internal/coupling"
	"github.com/san-kum/temcouple/internal/sweep"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(26)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	bandStyles = map[string]lipgloss.Style{
		coupling.InterpNegligible: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		coupling.InterpWeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		coupling.InterpModerate:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		coupling.InterpStrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
)

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// Render formats a full analysis report: the input matrix, the medium
// cross-check, the derived inductances, and the interpreted coefficient.
func Render(c11, c12, c22 float64, consts coupling.Constants, res *coupling.Result) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("TEM coupling analysis") + "\n\n")

	b.WriteString(dimStyle.Render("capacitance matrix (F/m)") + "\n")
	b.WriteString(fmt.Sprintf("  [ %12.4e  %12.4e ]\n", c11, c12))
	b.WriteString(fmt.Sprintf("  [ %12.4e  %12.4e ]\n\n", c12, c22))

	invC2 := 1 / (coupling.SpeedOfLight * coupling.SpeedOfLight)
	b.WriteString(row("με", fmt.Sprintf("%.17e", consts.MuEps())))
	b.WriteString(row("1/c²", fmt.Sprintf("%.17e", invC2)))
	b.WriteString("\n")

	b.WriteString(row("self-inductance L11", fmt.Sprintf("%.6e H/m", res.L11)))
	b.WriteString(row("self-inductance L22", fmt.Sprintf("%.6e H/m", res.L22)))
	b.WriteString(row("mutual inductance M", fmt.Sprintf("%.6e H/m", res.M)))
	b.WriteString(row("coupling coefficient k", fmt.Sprintf("%.6e", res.K)))
	b.WriteString("\n")

	band, ok := bandStyles[res.Interpretation]
	if !ok {
		band = valueStyle
	}
	b.WriteString(labelStyle.Render("interpretation") + band.Render(res.Interpretation) + "\n")

	if res.Anomalous {
		b.WriteString("\n" + warnStyle.Render("warning: |k| > 1, which is physically impossible") + "\n")
		b.WriteString(dimStyle.Render("this suggests inconsistent input data or precision loss") + "\n")
	}

	return b.String()
}

// RenderInductance formats a stored inductance matrix with its coupling
// summary, for replaying saved runs.
func RenderInductance(l *coupling.Matrix, k float64, interp string) string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("inductance matrix (H/m)") + "\n")
	n := l.Dims()
	for i := 0; i < n; i++ {
		b.WriteString("  [")
		for j := 0; j < n; j++ {
			b.WriteString(fmt.Sprintf(" %12.4e ", l.At(i, j)))
		}
		b.WriteString("]\n")
	}
	b.WriteString("\n")

	band, ok := bandStyles[interp]
	if !ok {
		band = valueStyle
	}
	b.WriteString(row("coupling coefficient k", fmt.Sprintf("%.6e", k)))
	b.WriteString(labelStyle.Render("interpretation") + band.Render(interp) + "\n")

	return b.String()
}

// PlotSweep charts the coupling coefficient across the sweep. Failed
// points (singular or unrealizable matrices) are skipped and counted
// below the graph.
func PlotSweep(points []sweep.Point, width, height int) string {
	ks, ok := sweep.Coefficients(points)

	data := make([]float64, 0, len(ks))
	failed := 0
	for i := range ks {
		if ok[i] {
			data = append(data, ks[i])
		} else {
			failed++
		}
	}

	if len(data) == 0 {
		return warnStyle.Render("no analyzable points in sweep range") + "\n"
	}

	caption := fmt.Sprintf("coupling coefficient k across %d points", len(points))
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)

	var b strings.Builder
	b.WriteString(graph + "\n")
	if failed > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d point(s) rejected (singular or unrealizable)", failed)) + "\n")
	}
	return b.String()
}
