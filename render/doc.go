// Package render draws SED curves as log-log line plots.
//
// All appearance settings live in a [Config] value that is passed to each
// call; the package keeps no global plotting state. The output format is
// chosen from the file extension (eps, svg, pdf, png, ...).
package render
