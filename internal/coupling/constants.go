package coupling

import "math"

// Vacuum constants (SI).
const (
	Mu0          = 4 * math.Pi * 1e-7 // permeability of free space (H/m)
	Eps0         = 8.8541878128e-12   // permittivity of free space (F/m)
	SpeedOfLight = 299792458.0        // speed of light in vacuum (m/s)
)

// Constants holds the medium parameters that relate the capacitance and
// inductance matrices. The zero value is not usable; start from Vacuum
// or Medium.
type Constants struct {
	Mu  float64 // permeability (H/m)
	Eps float64 // permittivity (F/m)
}

// Vacuum returns the free-space constants.
func Vacuum() Constants {
	return Constants{Mu: Mu0, Eps: Eps0}
}

// Medium returns constants for a homogeneous medium with the given
// relative permittivity and permeability.
func Medium(epsR, muR float64) Constants {
	return Constants{Mu: Mu0 * muR, Eps: Eps0 * epsR}
}

// MuEps returns the product με that scales the inverted capacitance
// matrix. In vacuum it equals 1/c².
func (c Constants) MuEps() float64 {
	return c.Mu * c.Eps
}

// PhaseVelocity returns 1/√(με), the TEM propagation speed in the medium.
func (c Constants) PhaseVelocity() float64 {
	return 1 / math.Sqrt(c.MuEps())
}
