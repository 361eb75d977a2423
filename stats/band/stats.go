package band

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sed/sed/interp"
)

// Stats holds luminosity statistics of a sampled SED curve.
type Stats struct {
	PointCount    int
	Luminosity    float64 // erg/s
	LogLuminosity float64
	Peak          float64 // max log nuLnu
	PeakLogNu     float64
	// Centroid is the luminosity-weighted mean log nu.
	Centroid float64
	// HalfLogNu is the log nu below which half of the luminosity is emitted.
	HalfLogNu float64
}

func toLog(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return math.Log10(v)
}

// Calculate computes all statistics of the curve (logNu, logNuLnu).
// The slices must have equal length.
func Calculate(logNu, logNuLnu []float64) Stats {
	n := len(logNu)
	if n == 0 {
		return Stats{
			LogLuminosity: math.Inf(-1),
			Peak:          math.Inf(-1),
		}
	}
	if n == 1 {
		return Stats{
			PointCount:    1,
			LogLuminosity: math.Inf(-1),
			Peak:          logNuLnu[0],
			PeakLogNu:     logNu[0],
			Centroid:      logNu[0],
			HalfLogNu:     logNu[0],
		}
	}

	var s Stats
	s.PointCount = n

	peak := floats.MaxIdx(logNuLnu)
	s.Peak = logNuLnu[peak]
	s.PeakLogNu = logNu[peak]

	areas := trapezoids(logNu, logNuLnu)
	s.Luminosity = floats.Sum(areas)
	s.LogLuminosity = toLog(s.Luminosity)
	s.Centroid = centroid(logNu, areas, s.Luminosity)
	s.HalfLogNu = fractionLogNu(logNu, areas, s.Luminosity, 0.5)

	return s
}

// Luminosity returns the trapezoidal integral of Lnu over linear frequency.
func Luminosity(logNu, logNuLnu []float64) float64 {
	if len(logNu) < 2 {
		return 0
	}
	return floats.Sum(trapezoids(logNu, logNuLnu))
}

// BandLuminosity returns the luminosity emitted between loLogNu and hiLogNu.
//
// Band edges are clipped to the sampled range; the curve is interpolated
// linearly in log-log space at the edges. An empty band yields 0.
func BandLuminosity(logNu, logNuLnu []float64, loLogNu, hiLogNu float64) float64 {
	sub, subL := Clip(logNu, logNuLnu, loLogNu, hiLogNu)
	return Luminosity(sub, subL)
}

// Clip returns the part of the curve inside [loLogNu, hiLogNu], with
// interpolated samples at both edges.
func Clip(logNu, logNuLnu []float64, loLogNu, hiLogNu float64) (clipNu, clipNuLnu []float64) {
	n := len(logNu)
	if n < 2 || !(loLogNu < hiLogNu) {
		return nil, nil
	}
	loLogNu = math.Max(loLogNu, logNu[0])
	hiLogNu = math.Min(hiLogNu, logNu[n-1])
	if !(loLogNu < hiLogNu) {
		return nil, nil
	}

	c := interp.Curve{X: logNu, Y: logNuLnu}
	clipNu = append(clipNu, loLogNu)
	clipNuLnu = append(clipNuLnu, c.At(loLogNu))
	for i, x := range logNu {
		if x > loLogNu && x < hiLogNu {
			clipNu = append(clipNu, x)
			clipNuLnu = append(clipNuLnu, logNuLnu[i])
		}
	}
	clipNu = append(clipNu, hiLogNu)
	clipNuLnu = append(clipNuLnu, c.At(hiLogNu))
	return clipNu, clipNuLnu
}

// trapezoids returns the luminosity of each interval of the curve.
func trapezoids(logNu, logNuLnu []float64) []float64 {
	n := len(logNu)
	nu := make([]float64, n)
	lnu := make([]float64, n)
	for i := range logNu {
		nu[i] = math.Pow(10, logNu[i])
		lnu[i] = math.Pow(10, logNuLnu[i]-logNu[i])
	}

	dx := floats.SubTo(make([]float64, n-1), nu[1:], nu[:n-1])
	sum := floats.AddTo(make([]float64, n-1), lnu[1:], lnu[:n-1])
	areas := make([]float64, n-1)
	vecmath.MulBlock(areas, dx, sum)
	floats.Scale(0.5, areas)
	return areas
}

// centroid returns the luminosity-weighted mean of the interval midpoints.
func centroid(logNu, areas []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	mid := make([]float64, len(areas))
	for i := range mid {
		mid[i] = 0.5 * (logNu[i] + logNu[i+1])
	}
	vecmath.MulBlockInPlace(mid, areas)
	return floats.Sum(mid) / total
}

// fractionLogNu returns the log nu below which frac of total is emitted.
func fractionLogNu(logNu, areas []float64, total, frac float64) float64 {
	if total <= 0 {
		return logNu[0]
	}
	target := frac * total
	cum := 0.0
	for i, a := range areas {
		if a > 0 && cum+a >= target {
			return interp.Linear2((target-cum)/a, logNu[i], logNu[i+1])
		}
		cum += a
	}
	return logNu[len(logNu)-1]
}
