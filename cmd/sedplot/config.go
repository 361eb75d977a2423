package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-sed/render"
)

// config is the resolved run configuration: defaults, then config file,
// then SEDPLOT_* environment, then flags.
type config struct {
	Luminosities []float64
	Output       string
	LogLevel     string
	Plot         render.Config
}

func setDefaults(v *viper.Viper) {
	def := render.DefaultConfig()

	v.SetDefault("luminosities", []string{"43", "45", "47"})
	v.SetDefault("output", "marconi_sed.eps")
	v.SetDefault("log_level", "info")

	v.SetDefault("plot.width", float64(def.Width/vg.Inch))
	v.SetDefault("plot.height", float64(def.Height/vg.Inch))
	v.SetDefault("plot.title", def.Title)
	v.SetDefault("plot.x_min", def.XMin)
	v.SetDefault("plot.x_max", def.XMax)
	v.SetDefault("plot.y_min", def.YMin)
	v.SetDefault("plot.y_max", def.YMax)
	v.SetDefault("plot.label_size", float64(def.LabelSize))
	v.SetDefault("plot.grid", def.Grid)
}

func loadConfig(v *viper.Viper) (config, error) {
	lums, err := parseLuminosities(v.GetStringSlice("luminosities"))
	if err != nil {
		return config{}, err
	}

	opts := []render.Option{
		render.WithSize(vg.Length(v.GetFloat64("plot.width"))*vg.Inch, vg.Length(v.GetFloat64("plot.height"))*vg.Inch),
		render.WithTitle(v.GetString("plot.title")),
		render.WithXRange(v.GetFloat64("plot.x_min"), v.GetFloat64("plot.x_max")),
		render.WithYRange(v.GetFloat64("plot.y_min"), v.GetFloat64("plot.y_max")),
		render.WithLabelSize(vg.Points(v.GetFloat64("plot.label_size"))),
	}
	if v.GetBool("plot.grid") {
		opts = append(opts, render.WithGrid())
	}

	return config{
		Luminosities: lums,
		Output:       v.GetString("output"),
		LogLevel:     v.GetString("log_level"),
		Plot:         render.ApplyOptions(opts...),
	}, nil
}

// parseLuminosities parses log10 Lbol values. Entries may themselves be
// comma separated, as they are when they come from the environment.
func parseLuminosities(values []string) ([]float64, error) {
	var out []float64
	for _, v := range values {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			lum, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid luminosity %q: %w", field, err)
			}
			out = append(out, lum)
		}
	}
	if len(out) == 0 {
		return nil, errNoLuminosities
	}
	return out, nil
}
