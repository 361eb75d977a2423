package bolcorr

import (
	"math"

	"github.com/cwbudde/algo-sed/sed"
	"github.com/cwbudde/algo-sed/stats/band"
)

// Corrections holds the bolometric corrections of one SED.
type Corrections struct {
	LogLbol float64 // log10 erg/s

	LogNuLnuB float64 // log10 nuLnu at 4400 Å
	KB        float64

	LogL2to10keV float64 // log10 of the 2-10 keV luminosity
	KX           float64
}

// Band edges in log10 Hz.
var (
	LogNuB     = sed.LogNuFromAngstrom(sed.AngstromB)
	LogNu2keV  = sed.LogNuFromKeV(sed.KeV2)
	LogNu10keV = sed.LogNuFromKeV(sed.KeV10)
)

// Calculate computes the corrections for r.
func Calculate(r sed.Result) Corrections {
	c := Corrections{LogLbol: r.LogLbol}

	c.LogNuLnuB = r.At(LogNuB)
	c.KB = math.Pow(10, c.LogLbol-c.LogNuLnuB)

	lx := band.BandLuminosity(r.LogNu, r.LogNuLnu, LogNu2keV, LogNu10keV)
	c.LogL2to10keV = math.Log10(lx)
	c.KX = math.Pow(10, c.LogLbol-c.LogL2to10keV)

	return c
}

// ForLuminosity evaluates the model at logLbolErg and returns its corrections.
func ForLuminosity(logLbolErg float64) Corrections {
	return Calculate(sed.Compute(logLbolErg))
}
