package sed

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sed/sed/interp"
)

// Band identifies one segment of the stitched SED.
type Band int

const (
	BandIR Band = iota
	BandOptical
	BandUV
	BandGap
	BandXRay
)

// Bands lists the segments in stitching order.
var Bands = [...]Band{BandIR, BandOptical, BandUV, BandGap, BandXRay}

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandIR:
		return "IR"
	case BandOptical:
		return "optical"
	case BandUV:
		return "UV"
	case BandGap:
		return "gap"
	case BandXRay:
		return "X-ray"
	default:
		return "unknown"
	}
}

// grid is an evenly spaced log-frequency grid.
type grid struct {
	lo, hi float64
	n      int
}

// Sampling grids. The gap grid ends at 17.40, short of the first X-ray
// sample; the bridge line is pinned there as well.
var (
	irGrid      = grid{lo: 14.25, hi: 14.48, n: 50}
	opticalGrid = grid{lo: 14.48, hi: 15.40, n: 93}
	uvGrid      = grid{lo: 15.40, hi: 15.78, n: 10}
	gapGrid     = grid{lo: 15.78, hi: 17.40, n: 100}
)

// Power-law indices of nuLnu and the fixed ratios A_IR/A_O and A_UV/A_O.
const (
	irIndex      = 3.0
	opticalIndex = 0.56
	uvIndex      = -0.76

	irScale = 4.74e-36
	uvScale = 2.11e20
)

// Len is the number of points in a stitched curve.
const Len = 50 + 93 + 10 + 100 + XRayLen

func (g grid) logNu() []float64 {
	return floats.Span(make([]float64, g.n), g.lo, g.hi)
}

// powerLaw evaluates log10(norm * (10^x)^index) for every x in logNu.
func powerLaw(logNu []float64, norm, index float64) []float64 {
	pow := make([]float64, len(logNu))
	for i, x := range logNu {
		pow[i] = math.Pow(math.Pow(10, x), index)
	}

	out := floats.ScaleTo(make([]float64, len(pow)), norm, pow)
	for i, v := range out {
		out[i] = math.Log10(v)
	}
	return out
}

// Bridge returns the log-log line joining the last UV sample uvEnd at
// log nu = 15.78 to the first X-ray value xrayStart.
//
// The line takes the value xrayStart at log nu = 17.40, the end of the gap
// grid, not at the first X-ray frequency 17.405214248838412.
func Bridge(uvEnd, xrayStart float64) interp.Line {
	return interp.LineThrough(gapGrid.lo, uvEnd, gapGrid.hi, xrayStart)
}

// Segment holds the samples of one band. LogNuLnu is in log10 erg/s.
type Segment struct {
	Band     Band
	LogNu    []float64
	LogNuLnu []float64
}

// Len returns the number of samples.
func (s Segment) Len() int { return len(s.LogNu) }

func newSegment(b Band, logNu, logNuLnuSolar []float64) Segment {
	logNuLnu := append([]float64(nil), logNuLnuSolar...)
	floats.AddConst(LogLsun, logNuLnu)
	return Segment{Band: b, LogNu: logNu, LogNuLnu: logNuLnu}
}
