package sed

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-sed/sed/interp"
)

// alpha_OX anchors: index 60 of the optical grid (log nu = 15.08, 2500 Å)
// and index 2 of the X-ray template (log nu = 17.68, 2 keV). The index span
// uses the rounded anchor frequencies.
const (
	opticalAnchor = 60
	xrayAnchor    = 2
)

var (
	logNu2500 = 15.08
	logNu2keV = 17.68
)

// Normalization holds the band normalisations for one bolometric luminosity.
// All constants are in solar units.
type Normalization struct {
	LogLbol float64 // input, log10 erg/s
	AX      float64
	AO      float64
	AIR     float64
	AUV     float64
}

// Normalize derives A_X from a cubic in log10(Lbol/Lsun) and the remaining
// constants from A_X.
func Normalize(logLbolErg float64) Normalization {
	l := LogSolar(logLbolErg)
	ax := math.Pow(10, -13.375+1.666*l-0.06283*math.Pow(l, 2)+0.001402*math.Pow(l, 3))
	ao := math.Pow(10, (math.Log10(ax)+2.06)/0.714)

	return Normalization{
		LogLbol: logLbolErg,
		AX:      ax,
		AO:      ao,
		AIR:     ao * irScale,
		AUV:     ao * uvScale,
	}
}

// Result is the stitched SED for one bolometric luminosity.
type Result struct {
	LogLbol float64 // input, log10 erg/s

	// Lbol is the trapezoidal integral of Lnu over linear frequency in erg/s.
	// It only checks the model and does not feed back into the curve.
	Lbol float64

	// LogNu and LogNuLnu hold log10 nu in Hz and log10 nuLnu in erg/s,
	// concatenated IR, optical, UV, gap, X-ray.
	LogNu    []float64
	LogNuLnu []float64

	// AlphaOXGradient is the slope of log Lnu between 2500 Å and 2 keV.
	AlphaOXGradient float64

	// AlphaOXL is the empirical alpha_OX predicted from Lnu at 2500 Å.
	AlphaOXL float64

	Norm     Normalization
	Segments [len(Bands)]Segment
}

// Compute evaluates the SED for log10(Lbol / erg s^-1).
func Compute(logLbolErg float64) Result {
	norm := Normalize(logLbolErg)

	irNu := irGrid.logNu()
	ir := powerLaw(irNu, norm.AIR, irIndex)

	optNu := opticalGrid.logNu()
	opt := powerLaw(optNu, norm.AO, opticalIndex)

	uvNu := uvGrid.logNu()
	uv := powerLaw(uvNu, norm.AUV, uvIndex)

	xNu, x := xray(math.Log10(norm.AX))

	gapNu := gapGrid.logNu()
	gap := Bridge(uv[len(uv)-1], x[0]).Eval(make([]float64, len(gapNu)), gapNu)

	r := Result{
		LogLbol: logLbolErg,
		Norm:    norm,
		Segments: [len(Bands)]Segment{
			newSegment(BandIR, irNu, ir),
			newSegment(BandOptical, optNu, opt),
			newSegment(BandUV, uvNu, uv),
			newSegment(BandGap, gapNu, gap),
			newSegment(BandXRay, xNu, x),
		},
	}

	r.LogNu = make([]float64, 0, Len)
	r.LogNuLnu = make([]float64, 0, Len)
	for _, s := range r.Segments {
		r.LogNu = append(r.LogNu, s.LogNu...)
		r.LogNuLnu = append(r.LogNuLnu, s.LogNuLnu...)
	}

	r.Lbol = trapezoidLbol(r.LogNu, r.LogNuLnu)

	// Both anchors are read before the solar offset is applied; it cancels
	// in the gradient and is added back for AlphaOXL.
	r.AlphaOXGradient = (opt[opticalAnchor] - optNu[opticalAnchor] - x[xrayAnchor] + xNu[xrayAnchor]) /
		(logNu2keV - logNu2500)
	r.AlphaOXL = -0.11*(opt[opticalAnchor]-optNu[opticalAnchor]+LogLsun) + 1.85

	return r
}

// trapezoidLbol integrates Lnu = 10^(logNuLnu - logNu) over nu = 10^logNu.
func trapezoidLbol(logNu, logNuLnu []float64) float64 {
	nu := make([]float64, len(logNu))
	lnu := make([]float64, len(logNu))
	for i := range logNu {
		nu[i] = math.Pow(10, logNu[i])
		lnu[i] = math.Pow(10, logNuLnu[i]-logNu[i])
	}
	return integrate.Trapezoidal(nu, lnu)
}

// Segment returns the samples of band b.
func (r Result) Segment(b Band) (Segment, bool) {
	for _, s := range r.Segments {
		if s.Band == b && s.LogNu != nil {
			return s, true
		}
	}
	return Segment{}, false
}

// At returns log10 nuLnu at logNu by linear interpolation of the stitched
// curve. It returns NaN outside the sampled range.
func (r Result) At(logNu float64) float64 {
	return interp.Curve{X: r.LogNu, Y: r.LogNuLnu}.At(logNu)
}

// LogLnu2500 returns log10 Lnu at 2500 Å in erg/s/Hz.
func (r Result) LogLnu2500() float64 {
	s := r.Segments[BandOptical]
	return s.LogNuLnu[opticalAnchor] - s.LogNu[opticalAnchor]
}

// LogLnu2keV returns log10 Lnu at 2 keV in erg/s/Hz.
func (r Result) LogLnu2keV() float64 {
	s := r.Segments[BandXRay]
	return s.LogNuLnu[xrayAnchor] - s.LogNu[xrayAnchor]
}
