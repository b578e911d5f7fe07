package config

import "sort"

// Presets are worked examples of per-unit-length capacitance matrices.
// Values are F/m from field-solver extractions of common geometries.
var Presets = map[string]*Config{
	"ribbon": {
		Capacitance: CapacitanceConfig{C11: 1.25e-10, C12: -4.90e-16, C22: 1.23e-10},
		Medium:      MediumConfig{EpsR: 1.0, MuR: 1.0},
	},
	"microstrip-pair": {
		Capacitance: CapacitanceConfig{C11: 1.1e-10, C12: -2.4e-11, C22: 1.1e-10},
		Medium:      MediumConfig{EpsR: 4.4, MuR: 1.0},
	},
	"twisted-pair": {
		Capacitance: CapacitanceConfig{C11: 5.0e-11, C12: -1.8e-11, C22: 5.0e-11},
		Medium:      MediumConfig{EpsR: 2.3, MuR: 1.0},
	},
	"wide-spaced": {
		Capacitance: CapacitanceConfig{C11: 8.0e-11, C12: -1.0e-13, C22: 8.2e-11},
		Medium:      MediumConfig{EpsR: 1.0, MuR: 1.0},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Capacitance = p.Capacitance
	cfg.Medium = p.Medium
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
