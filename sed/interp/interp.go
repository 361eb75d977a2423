package interp

import (
	"math"
	"sort"
)

// Linear2 interpolates between x0 and x1 at fraction t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Line is a straight line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// LineThrough returns the line through (x0, y0) and (x1, y1).
// The intercept is pinned at the second point.
func LineThrough(x0, y0, x1, y1 float64) Line {
	slope := (y1 - y0) / (x1 - x0)
	return Line{
		Slope:     slope,
		Intercept: y1 - slope*x1,
	}
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Eval evaluates the line at every xs[i] and stores the result in dst.
// dst must be at least as long as xs. It returns dst[:len(xs)].
func (l Line) Eval(dst, xs []float64) []float64 {
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = l.At(x)
	}
	return dst
}

// Curve is a sampled curve with non-decreasing abscissae.
//
// Repeated abscissae are allowed; they occur where two stitched segments
// share an endpoint. A lookup exactly on a repeated abscissa returns the
// value of the later sample.
type Curve struct {
	X []float64
	Y []float64
}

// At returns the linearly interpolated value at x.
// NaN is returned for an empty curve, a NaN x, or x outside [X[0], X[n-1]].
func (c Curve) At(x float64) float64 {
	n := len(c.X)
	if n == 0 || len(c.Y) < n || math.IsNaN(x) {
		return math.NaN()
	}
	if x < c.X[0] || x > c.X[n-1] {
		return math.NaN()
	}

	hi := sort.Search(n, func(i int) bool { return c.X[i] > x })
	if hi == n {
		return c.Y[n-1]
	}
	lo := hi - 1
	span := c.X[hi] - c.X[lo]
	if span == 0 {
		return c.Y[hi]
	}
	return Linear2((x-c.X[lo])/span, c.Y[lo], c.Y[hi])
}
