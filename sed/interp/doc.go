// Package interp provides the linear interpolation primitives used to stitch
// and query piecewise SED curves.
//
// Available helpers:
//
//   - [Linear2]:     2-point linear interpolation
//   - [Line]:        straight line y = slope*x + intercept
//   - [LineThrough]: line through two points
//   - [Curve]:       piecewise-linear lookup on a sampled, sorted curve
//
// All curves are expected in log-log space, so a straight [Line] is a power
// law in linear units.
package interp
