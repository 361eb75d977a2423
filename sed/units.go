package sed

import "math"

// LogLsun is log10 of the solar luminosity in erg/s as used by the model.
const LogLsun = 33.58

const (
	speedOfLightAngstrom = 2.99792458e18 // Å/s
	hzPerKeV             = 2.417989242e17
)

// Wavelength and energy anchors of the model.
const (
	Angstrom2500 = 2500.0
	AngstromB    = 4400.0
	KeV2         = 2.0
	KeV10        = 10.0
)

// LogNuFromAngstrom returns log10 of the frequency in Hz for a wavelength in Å.
func LogNuFromAngstrom(wavelength float64) float64 {
	return math.Log10(speedOfLightAngstrom / wavelength)
}

// LogNuFromKeV returns log10 of the frequency in Hz for a photon energy in keV.
func LogNuFromKeV(energy float64) float64 {
	return math.Log10(energy * hzPerKeV)
}

// LogSolar converts log10 luminosity in erg/s to log10 solar luminosities.
func LogSolar(logErg float64) float64 {
	return logErg - LogLsun
}
