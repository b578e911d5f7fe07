package coupling

import "math"

// Default tolerance and band policy. These are conventions, not derived
// laws; override via Options when a different policy is needed.
const (
	DefaultSingularTol = 1e-12
	DefaultSymmetryTol = 1e-9
	DefaultAnomalyTol  = 1e-9

	DefaultNegligibleBound = 1e-3
	DefaultWeakBound       = 0.1
	DefaultModerateBound   = 0.5
)

// Interpretation labels for the coupling coefficient bands.
const (
	InterpNegligible = "negligible/very weak coupling"
	InterpWeak       = "weak coupling"
	InterpModerate   = "moderate coupling"
	InterpStrong     = "strong coupling"
)

// Bands holds the |k| thresholds separating the interpretation labels:
// below Negligible, [Negligible, Weak), [Weak, Moderate), and >= Moderate.
type Bands struct {
	Negligible float64
	Weak       float64
	Moderate   float64
}

// Classify returns the interpretation label for a coupling coefficient.
func (b Bands) Classify(k float64) string {
	a := math.Abs(k)
	switch {
	case a < b.Negligible:
		return InterpNegligible
	case a < b.Weak:
		return InterpWeak
	case a < b.Moderate:
		return InterpModerate
	default:
		return InterpStrong
	}
}

// Options configures an analysis. DefaultOptions covers the common case
// of conductors in vacuum.
type Options struct {
	Constants   Constants
	SingularTol float64 // relative determinant/pivot tolerance
	SymmetryTol float64 // relative off-diagonal agreement tolerance
	AnomalyTol  float64 // slack on the |k| <= 1 bound before flagging
	Bands       Bands
}

// DefaultOptions returns the documented default policy: vacuum constants
// and the standard tolerance and band thresholds.
func DefaultOptions() Options {
	return Options{
		Constants:   Vacuum(),
		SingularTol: DefaultSingularTol,
		SymmetryTol: DefaultSymmetryTol,
		AnomalyTol:  DefaultAnomalyTol,
		Bands: Bands{
			Negligible: DefaultNegligibleBound,
			Weak:       DefaultWeakBound,
			Moderate:   DefaultModerateBound,
		},
	}
}

// Result holds the derived per-unit-length inductance terms and the
// coupling coefficient between conductors 0 and 1. Anomalous marks a
// |k| > 1 result, which no realizable capacitance matrix produces; the
// raw value is reported, never clamped.
type Result struct {
	L11 float64 // self-inductance of conductor 1 (H/m)
	L22 float64 // self-inductance of conductor 2 (H/m)
	M   float64 // mutual inductance (H/m)
	K   float64 // coupling coefficient, dimensionless

	Interpretation string
	Anomalous      bool

	// L is the full derived inductance matrix.
	L *Matrix
}

// Analyze computes the coupling coefficient for a two-conductor line
// from its three distinct capacitance matrix entries. C11 and C22 are
// the self-capacitances and must be positive; C12 is the mutual
// capacitance and may be zero or negative.
func Analyze(c11, c12, c22 float64, opts Options) (*Result, error) {
	if !finite(c11) || c11 <= 0 {
		return nil, entryErr(0, 0, c11, ErrInvalidInput)
	}
	if !finite(c22) || c22 <= 0 {
		return nil, entryErr(1, 1, c22, ErrInvalidInput)
	}
	if !finite(c12) {
		return nil, entryErr(0, 1, c12, ErrInvalidInput)
	}
	return AnalyzeMatrix(NewMatrix2(c11, c12, c22), opts)
}

// AnalyzeMatrix computes the coupling coefficient for an N-conductor
// line. The coupling terms are taken between conductors 0 and 1; the
// full inductance matrix is returned for the rest. The matrix must be
// symmetric with positive diagonal entries and invertible.
func AnalyzeMatrix(c *Matrix, opts Options) (*Result, error) {
	if c.Dims() < 2 {
		return nil, ErrDimension
	}
	if !c.Finite() {
		return nil, ErrInvalidInput
	}
	for i := 0; i < c.Dims(); i++ {
		if c.At(i, i) <= 0 {
			return nil, entryErr(i, i, c.At(i, i), ErrInvalidInput)
		}
	}
	if !c.Symmetric(opts.SymmetryTol) {
		return nil, ErrNotSymmetric
	}

	inv, err := c.Inverse(opts.SingularTol)
	if err != nil {
		return nil, err
	}
	l := inv.Scale(opts.Constants.MuEps())

	for i := 0; i < l.Dims(); i++ {
		if l.At(i, i) <= 0 {
			return nil, entryErr(i, i, l.At(i, i), ErrUnrealizable)
		}
	}

	res := &Result{
		L11: l.At(0, 0),
		L22: l.At(1, 1),
		M:   l.At(0, 1),
		L:   l,
	}
	res.K = res.M / math.Sqrt(res.L11*res.L22)
	res.Anomalous = math.Abs(res.K) > 1+opts.AnomalyTol
	res.Interpretation = opts.Bands.Classify(res.K)
	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
