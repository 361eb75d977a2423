// Package bolcorr derives bolometric corrections from a model SED.
//
// Two corrections are reported: K_B = Lbol / nuLnu(4400 Å), the optical
// B-band correction, and K_X = Lbol / L(2-10 keV), the hard X-ray
// correction. Lbol is the model input, not the trapezoidal check value.
package bolcorr
