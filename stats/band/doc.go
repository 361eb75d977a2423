// Package band computes luminosity statistics over sampled SED curves.
//
// Curves are given in log-log form: log10 nu in Hz and log10 nuLnu in erg/s,
// with non-decreasing frequencies. Luminosities are trapezoidal integrals of
// Lnu = nuLnu/nu over linear frequency, the same rule the model uses for its
// bolometric check.
package band
