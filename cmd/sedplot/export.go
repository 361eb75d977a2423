package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sed/sed"
)

var errUnknownFormat = errors.New("unknown export format")

// number is a float64 that encodes NaN and ±Inf as JSON null. YAML and CSV
// carry non-finite values natively.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type exportPoint struct {
	Band     string `json:"band" yaml:"band"`
	LogNu    number `json:"log_nu" yaml:"log_nu"`
	LogNuLnu number `json:"log_nu_lnu" yaml:"log_nu_lnu"`
}

type exportCurve struct {
	LogLbol         number        `json:"log_lbol" yaml:"log_lbol"`
	LbolCheck       number        `json:"lbol_check" yaml:"lbol_check"`
	AX              number        `json:"a_x" yaml:"a_x"`
	AO              number        `json:"a_o" yaml:"a_o"`
	AlphaOXGradient number        `json:"alpha_ox_gradient" yaml:"alpha_ox_gradient"`
	AlphaOXL        number        `json:"alpha_ox_l2500" yaml:"alpha_ox_l2500"`
	Points          []exportPoint `json:"points" yaml:"points"`
}

func newExportCurve(r sed.Result) exportCurve {
	c := exportCurve{
		LogLbol:         number(r.LogLbol),
		LbolCheck:       number(r.Lbol),
		AX:              number(r.Norm.AX),
		AO:              number(r.Norm.AO),
		AlphaOXGradient: number(r.AlphaOXGradient),
		AlphaOXL:        number(r.AlphaOXL),
		Points:          make([]exportPoint, 0, len(r.LogNu)),
	}
	for _, s := range r.Segments {
		for i := range s.LogNu {
			c.Points = append(c.Points, exportPoint{
				Band:     s.Band.String(),
				LogNu:    number(s.LogNu[i]),
				LogNuLnu: number(s.LogNuLnu[i]),
			})
		}
	}
	return c
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write SED curves as csv, json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			out := cmd.OutOrStdout()
			if file != "" {
				f, createErr := os.Create(file)
				if createErr != nil {
					return fmt.Errorf("create %s: %w", file, createErr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close %s: %w", file, cerr)
					}
				}()
				out = f
			}

			if err := writeExport(out, format, a.compute()); err != nil {
				return err
			}
			if file != "" {
				a.log.WithField("file", file).Info("wrote export")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format (csv, json, yaml)")
	cmd.Flags().StringVar(&file, "file", "", "output file (default stdout)")
	return cmd
}

func writeExport(w io.Writer, format string, results []sed.Result) error {
	curves := make([]exportCurve, len(results))
	for i, r := range results {
		curves[i] = newExportCurve(r)
	}

	switch strings.ToLower(format) {
	case "csv":
		return writeCSV(w, curves)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(curves); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(curves); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func writeCSV(w io.Writer, curves []exportCurve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"log_lbol", "band", "log_nu", "log_nu_lnu"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range curves {
		lum := c.LogLbol.String()
		for _, p := range c.Points {
			rec := []string{lum, p.Band, p.LogNu.String(), p.LogNuLnu.String()}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
