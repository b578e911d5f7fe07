package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/temcouple/internal/coupling"
)

// ErrBandOrder indicates band thresholds that are not strictly
// increasing, which would leave an unreachable interpretation band.
var ErrBandOrder = errors.New("config: band thresholds must be increasing (negligible < weak < moderate)")

const (
	DefaultEpsR        = 1.0
	DefaultMuR         = 1.0
	DefaultSingularTol = coupling.DefaultSingularTol
	DefaultSymmetryTol = coupling.DefaultSymmetryTol
	DefaultAnomalyTol  = coupling.DefaultAnomalyTol
	DefaultNegligible  = coupling.DefaultNegligibleBound
	DefaultWeak        = coupling.DefaultWeakBound
	DefaultModerate    = coupling.DefaultModerateBound
)

type Config struct {
	Capacitance CapacitanceConfig `yaml:"capacitance"`
	Medium      MediumConfig      `yaml:"medium"`
	Tolerances  ToleranceConfig   `yaml:"tolerances"`
	Bands       BandsConfig       `yaml:"bands"`
}

// CapacitanceConfig holds the two-conductor matrix entries in F/m.
type CapacitanceConfig struct {
	C11 float64 `yaml:"c11"`
	C12 float64 `yaml:"c12"`
	C22 float64 `yaml:"c22"`
}

// MediumConfig scales the vacuum constants for a homogeneous dielectric.
type MediumConfig struct {
	EpsR float64 `yaml:"eps_r"`
	MuR  float64 `yaml:"mu_r"`
}

type ToleranceConfig struct {
	Singular float64 `yaml:"singular"`
	Symmetry float64 `yaml:"symmetry"`
	Anomaly  float64 `yaml:"anomaly"`
}

// BandsConfig holds the |k| interpretation thresholds. These are a
// reporting convention, not derived constants; see coupling.Bands.
type BandsConfig struct {
	Negligible float64 `yaml:"negligible"`
	Weak       float64 `yaml:"weak"`
	Moderate   float64 `yaml:"moderate"`
}

func DefaultConfig() *Config {
	return &Config{
		Medium: MediumConfig{EpsR: DefaultEpsR, MuR: DefaultMuR},
		Tolerances: ToleranceConfig{
			Singular: DefaultSingularTol,
			Symmetry: DefaultSymmetryTol,
			Anomaly:  DefaultAnomalyTol,
		},
		Bands: BandsConfig{
			Negligible: DefaultNegligible,
			Weak:       DefaultWeak,
			Moderate:   DefaultModerate,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the effective band thresholds, after defaults have
// filled any unset fields.
func (c *Config) Validate() error {
	b := c.Options().Bands
	if b.Negligible >= b.Weak || b.Weak >= b.Moderate {
		return ErrBandOrder
	}
	return nil
}

// Options maps the file config onto the analysis options. Zero-valued
// fields fall back to the documented defaults.
func (c *Config) Options() coupling.Options {
	opts := coupling.DefaultOptions()
	epsR, muR := c.Medium.EpsR, c.Medium.MuR
	if epsR <= 0 {
		epsR = DefaultEpsR
	}
	if muR <= 0 {
		muR = DefaultMuR
	}
	opts.Constants = coupling.Medium(epsR, muR)
	if c.Tolerances.Singular > 0 {
		opts.SingularTol = c.Tolerances.Singular
	}
	if c.Tolerances.Symmetry > 0 {
		opts.SymmetryTol = c.Tolerances.Symmetry
	}
	if c.Tolerances.Anomaly > 0 {
		opts.AnomalyTol = c.Tolerances.Anomaly
	}
	if c.Bands.Negligible > 0 {
		opts.Bands.Negligible = c.Bands.Negligible
	}
	if c.Bands.Weak > 0 {
		opts.Bands.Weak = c.Bands.Weak
	}
	if c.Bands.Moderate > 0 {
		opts.Bands.Moderate = c.Bands.Moderate
	}
	return opts
}
