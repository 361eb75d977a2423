// Package sed evaluates the empirical spectral energy distribution of an
// active galactic nucleus after Marconi et al. (2004).
//
// A single input, log10 of the bolometric luminosity in erg/s, fixes the
// normalisation of four closed-form bands:
//
//   - infrared:  nuLnu ~ nu^3        on 14.25 <= log nu <= 14.48
//   - optical:   nuLnu ~ nu^0.56     on 14.48 <= log nu <= 15.40
//   - UV:        nuLnu ~ nu^-0.76    on 15.40 <= log nu <= 15.78
//   - X-ray:     tabulated template  on 17.41 <= log nu <= 20.50
//
// The gap between the UV and X-ray bands is bridged by a straight line in
// log-log space. [Compute] stitches the bands into one curve and reports the
// summary parameters of the model: a trapezoidal check of the bolometric
// luminosity and two estimates of the optical to X-ray index alpha_OX.
//
// Evaluation is pure. Non-finite inputs propagate as NaN or Inf instead of
// being reported as errors.
package sed
