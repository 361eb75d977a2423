package testutil

import "gonum.org/v1/gonum/floats"

// PowerLaw returns an n-point curve log nuLnu = logNorm + slope*log nu on
// an evenly spaced log-frequency grid [lo, hi].
func PowerLaw(lo, hi float64, n int, slope, logNorm float64) (logNu, logNuLnu []float64) {
	logNu = floats.Span(make([]float64, n), lo, hi)
	logNuLnu = make([]float64, n)
	for i, x := range logNu {
		logNuLnu[i] = logNorm + slope*x
	}
	return logNu, logNuLnu
}

// FlatLnu returns a curve with constant Lnu = 10^logLnu, i.e. slope one in
// log nuLnu. Its luminosity over [lo, hi] is 10^logLnu * (10^hi - 10^lo).
func FlatLnu(lo, hi float64, n int, logLnu float64) (logNu, logNuLnu []float64) {
	return PowerLaw(lo, hi, n, 1, logLnu)
}
