package report

import (
	"strings"
	"testing"

	"github.com/san-kum/temcouple/internal/coupling"
	"github.com/san-kum/temcouple/internal/sweep"
)

func TestRenderInductance(t *testing.T) {
	res, err := coupling.Analyze(1.25e-10, -4.90e-16, 1.23e-10, coupling.DefaultOptions())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	out := RenderInductance(res.L, res.K, res.Interpretation)

	if !strings.Contains(out, "inductance matrix") {
		t.Error("expected matrix header in output")
	}
	if !strings.Contains(out, coupling.InterpNegligible) {
		t.Errorf("expected interpretation %q in output", coupling.InterpNegligible)
	}
	// Both matrix rows rendered.
	if strings.Count(out, "[") != 2 {
		t.Errorf("expected 2 matrix rows, got %d", strings.Count(out, "["))
	}
}

func TestRenderIncludesRawCoefficient(t *testing.T) {
	res, err := coupling.Analyze(1e-10, -2e-11, 1e-10, coupling.DefaultOptions())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	out := Render(1e-10, -2e-11, 1e-10, coupling.Vacuum(), res)

	// The raw number is never hidden behind the label.
	if !strings.Contains(out, "2.000000e-01") {
		t.Errorf("expected raw k value in report, got:\n%s", out)
	}
	if !strings.Contains(out, res.Interpretation) {
		t.Errorf("expected interpretation %q in report", res.Interpretation)
	}
}

func TestPlotSweep(t *testing.T) {
	points, err := sweep.Run(sweep.Config{
		C11: 1e-10, C12: 0, C22: 1e-10,
		Param: sweep.ParamC12,
		From:  0, To: 1.5e-10, Steps: 16,
		Opts: coupling.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	out := PlotSweep(points, 60, 8)

	if !strings.Contains(out, "16 points") {
		t.Errorf("expected point count caption, got:\n%s", out)
	}
	if !strings.Contains(out, "rejected") {
		t.Error("expected rejected-point count for sweep past the singular boundary")
	}
}

func TestPlotSweepAllRejected(t *testing.T) {
	// Every point past the singular boundary fails.
	points, err := sweep.Run(sweep.Config{
		C11: 1e-10, C12: 0, C22: 1e-10,
		Param: sweep.ParamC12,
		From:  2e-10, To: 3e-10, Steps: 4,
		Opts: coupling.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	out := PlotSweep(points, 60, 8)
	if !strings.Contains(out, "no analyzable points") {
		t.Errorf("expected empty-sweep notice, got:\n%s", out)
	}
}
