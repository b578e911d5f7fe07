// Package sweep varies one capacitance matrix entry across a range and
// collects the coupling coefficient at each point, for boundary studies
// around the singular configuration.
package sweep

import (
	"errors"

	"github.com/san-kum/temcouple/internal/coupling"
)

var (
	// ErrBadSteps indicates a sweep with fewer than 2 points.
	ErrBadSteps = errors.New("sweep: steps must be at least 2")

	// ErrBadParam indicates an unknown sweep parameter.
	ErrBadParam = errors.New("sweep: unknown parameter")
)

// Param names the capacitance entry a sweep varies.
type Param string

const (
	ParamC11 Param = "c11"
	ParamC12 Param = "c12"
	ParamC22 Param = "c22"
)

// Config describes a sweep: the base two-conductor matrix, which entry
// to vary, and the sampling range.
type Config struct {
	C11, C12, C22 float64

	Param Param
	From  float64
	To    float64
	Steps int

	Opts coupling.Options
}

// Point is the outcome at one sweep value. Err is non-nil where the
// swept matrix was rejected (singular or unrealizable); the sweep keeps
// going past such points.
type Point struct {
	Value  float64
	Result *coupling.Result
	Err    error
}

func (c Config) validate() error {
	if c.Steps < 2 {
		return ErrBadSteps
	}
	switch c.Param {
	case ParamC11, ParamC12, ParamC22:
		return nil
	default:
		return ErrBadParam
	}
}

// values returns the evenly spaced sample points, endpoints included.
func (c Config) values() []float64 {
	vals := make([]float64, c.Steps)
	step := (c.To - c.From) / float64(c.Steps-1)
	for i := range vals {
		vals[i] = c.From + float64(i)*step
	}
	vals[c.Steps-1] = c.To
	return vals
}

func (c Config) analyzeAt(v float64) (*coupling.Result, error) {
	c11, c12, c22 := c.C11, c.C12, c.C22
	switch c.Param {
	case ParamC11:
		c11 = v
	case ParamC12:
		c12 = v
	case ParamC22:
		c22 = v
	}
	return coupling.Analyze(c11, c12, c22, c.Opts)
}

// Run executes the sweep sequentially.
func Run(cfg Config) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vals := cfg.values()
	points := make([]Point, len(vals))
	for i, v := range vals {
		res, err := cfg.analyzeAt(v)
		points[i] = Point{Value: v, Result: res, Err: err}
	}
	return points, nil
}

// Coefficients extracts the coupling coefficient per point. Failed
// points report ok=false in the parallel mask.
func Coefficients(points []Point) (ks []float64, ok []bool) {
	ks = make([]float64, len(points))
	ok = make([]bool, len(points))
	for i, p := range points {
		if p.Err == nil && p.Result != nil {
			ks[i] = p.Result.K
			ok[i] = true
		}
	}
	return ks, ok
}
