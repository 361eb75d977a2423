package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var (
	ErrNoSeries          = errors.New("render: no series to plot")
	ErrLengthMismatch    = errors.New("render: series x and y lengths differ")
	ErrUnsupportedFormat = errors.New("render: unsupported image format")
)

var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tex":  true,
	"tif":  true,
	"tiff": true,
}

// Series is one SED curve.
type Series struct {
	Label    string
	LogNu    []float64
	LogNuLnu []float64
	Style    Style
}

// FormatFromPath returns the image format implied by the extension of path.
func FormatFromPath(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[format] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return format, nil
}

// New builds a plot of series using cfg.
func New(series []Series, cfg Config) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Label.TextStyle.Font.Size = cfg.LabelSize
	p.Y.Label.TextStyle.Font.Size = cfg.LabelSize
	p.Legend.TextStyle.Font.Size = cfg.LabelSize
	p.Legend.Top = cfg.LegendTop
	p.Legend.Left = cfg.LegendLeft

	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, s := range series {
		if len(s.LogNu) != len(s.LogNuLnu) {
			return nil, fmt.Errorf("%w: series %d (%q): %d vs %d",
				ErrLengthMismatch, i, s.Label, len(s.LogNu), len(s.LogNuLnu))
		}

		pts := make(plotter.XYs, len(s.LogNu))
		for j := range s.LogNu {
			pts[j].X = s.LogNu[j]
			pts[j].Y = s.LogNuLnu[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: series %d (%q): %w", i, s.Label, err)
		}
		if s.Style.Color != nil {
			line.LineStyle.Color = s.Style.Color
		}
		if s.Style.Width > 0 {
			line.LineStyle.Width = s.Style.Width
		}
		line.LineStyle.Dashes = s.Style.Dashes

		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	// Fix the axis ranges after adding data; Add widens them to fit.
	p.X.Min, p.X.Max = cfg.XMin, cfg.XMax
	p.Y.Min, p.Y.Max = cfg.YMin, cfg.YMax

	return p, nil
}

// Write renders series in the given format to w.
func Write(w io.Writer, format string, series []Series, cfg Config) error {
	format = strings.ToLower(format)
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	p, err := New(series, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}

// Save renders series to the file at path. The format follows the extension.
func Save(path string, series []Series, cfg Config) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}

	p, err := New(series, cfg)
	if err != nil {
		return err
	}

	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
