package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sed/render"
	"github.com/cwbudde/algo-sed/sed"
)

func newPlotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Render SED curves to an image file",
		Args:  cobra.NoArgs,
		RunE:  a.runPlot,
	}
}

func (a *app) runPlot(_ *cobra.Command, _ []string) error {
	a.log.WithField("count", len(a.cfg.Luminosities)).Info("making spectral energy distributions")

	results := a.compute()
	if err := render.Save(a.cfg.Output, seriesOf(results), a.cfg.Plot); err != nil {
		return err
	}

	a.log.WithField("file", a.cfg.Output).Info("wrote plot")
	return nil
}

func seriesOf(results []sed.Result) []render.Series {
	series := make([]render.Series, len(results))
	for i, r := range results {
		series[i] = render.Series{
			Label:    legendLabel(r.LogLbol),
			LogNu:    r.LogNu,
			LogNuLnu: r.LogNuLnu,
			Style:    render.StyleAt(i),
		}
	}
	return series
}

func legendLabel(logLbol float64) string {
	return fmt.Sprintf("L_bol = 10^%s erg/s", strconv.FormatFloat(logLbol, 'g', -1, 64))
}
