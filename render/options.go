package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Config defines the appearance of a rendered SED plot.
type Config struct {
	Width  vg.Length
	Height vg.Length

	Title  string
	XLabel string
	YLabel string

	XMin, XMax float64
	YMin, YMax float64

	// LabelSize is the font size of the axis labels and the legend.
	LabelSize vg.Length

	LegendTop  bool
	LegendLeft bool
	Grid       bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the layout of the reference figure: log nu from 14.3
// to 21 and log nuLnu from 41 to 47.
func DefaultConfig() Config {
	return Config{
		Width:     6 * vg.Inch,
		Height:    4.5 * vg.Inch,
		XLabel:    "log10(nu / Hz)",
		YLabel:    "log10(nu L_nu / erg s^-1)",
		XMin:      14.3,
		XMax:      21,
		YMin:      41,
		YMax:      47,
		LabelSize: vg.Points(14),
		LegendTop: true,
	}
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.Width = width
		}
		if height > 0 {
			cfg.Height = height
		}
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(cfg *Config) {
		cfg.Title = title
	}
}

// WithXRange sets the log-frequency axis range. Empty ranges are ignored.
func WithXRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if lo < hi {
			cfg.XMin, cfg.XMax = lo, hi
		}
	}
}

// WithYRange sets the log-luminosity axis range. Empty ranges are ignored.
func WithYRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if lo < hi {
			cfg.YMin, cfg.YMax = lo, hi
		}
	}
}

// WithLabelSize sets the font size of axis labels and legend entries.
func WithLabelSize(size vg.Length) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.LabelSize = size
		}
	}
}

// WithLegend places the legend.
func WithLegend(top, left bool) Option {
	return func(cfg *Config) {
		cfg.LegendTop = top
		cfg.LegendLeft = left
	}
}

// WithGrid draws grid lines at the major ticks.
func WithGrid() Option {
	return func(cfg *Config) {
		cfg.Grid = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Style is the line style of one series.
type Style struct {
	Color  color.Color
	Dashes []vg.Length
	Width  vg.Length
}

// DefaultStyles returns black solid, red dashed and blue dotted lines.
func DefaultStyles() []Style {
	return []Style{
		{Color: color.Black, Width: vg.Points(1)},
		{Color: color.RGBA{R: 0xff, A: 0xff}, Dashes: []vg.Length{vg.Points(6), vg.Points(3)}, Width: vg.Points(1)},
		{Color: color.RGBA{B: 0xff, A: 0xff}, Dashes: []vg.Length{vg.Points(1), vg.Points(2)}, Width: vg.Points(1)},
	}
}

// StyleAt returns the i-th default style, cycling through DefaultStyles.
func StyleAt(i int) Style {
	styles := DefaultStyles()
	return styles[i%len(styles)]
}
