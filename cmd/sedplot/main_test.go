package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sed/sed"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseLuminosities(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []float64
		wantErr bool
	}{
		{name: "separate", in: []string{"43", "45"}, want: []float64{43, 45}},
		{name: "comma joined", in: []string{"43, 45,47"}, want: []float64{43, 45, 47}},
		{name: "fractional", in: []string{"44.5"}, want: []float64{44.5}},
		{name: "invalid", in: []string{"abc"}, wantErr: true},
		{name: "empty", in: []string{" , "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLuminosities(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseLuminositiesEmptyIsSentinel(t *testing.T) {
	if _, err := parseLuminosities(nil); !errors.Is(err, errNoLuminosities) {
		t.Fatalf("expected errNoLuminosities, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if _, err := newLogger(level, io.Discard); err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
	}
	if _, err := newLogger("loud", io.Discard); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLegendLabel(t *testing.T) {
	if got := legendLabel(43); got != "L_bol = 10^43 erg/s" {
		t.Fatalf("legendLabel(43) = %q", got)
	}
	if got := legendLabel(44.5); got != "L_bol = 10^44.5 erg/s" {
		t.Fatalf("legendLabel(44.5) = %q", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Luminosities) != 3 || cfg.Luminosities[0] != 43 || cfg.Luminosities[2] != 47 {
		t.Fatalf("Luminosities = %v", cfg.Luminosities)
	}
	if cfg.Output != "marconi_sed.eps" {
		t.Fatalf("Output = %q", cfg.Output)
	}
	if cfg.Plot.XMin != 14.3 || cfg.Plot.XMax != 21 || cfg.Plot.YMin != 41 || cfg.Plot.YMax != 47 {
		t.Fatalf("plot ranges = %+v", cfg.Plot)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sedplot.yaml")
	content := "luminosities: [44, 46]\nplot:\n  x_min: 15\n  x_max: 20\n  grid: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Luminosities) != 2 || cfg.Luminosities[0] != 44 || cfg.Luminosities[1] != 46 {
		t.Fatalf("Luminosities = %v", cfg.Luminosities)
	}
	if cfg.Plot.XMin != 15 || cfg.Plot.XMax != 20 || !cfg.Plot.Grid {
		t.Fatalf("plot = %+v", cfg.Plot)
	}
	if cfg.Plot.YMin != 41 {
		t.Fatalf("YMin = %v, want default 41", cfg.Plot.YMin)
	}
}

func TestTableCommand(t *testing.T) {
	out, err := runCLI(t, "table", "-l", "43,45")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "log Lbol") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "43.00") || !strings.HasPrefix(lines[3], "45.00") {
		t.Fatalf("rows = %q, %q", lines[2], lines[3])
	}
}

func TestLuminositiesFromEnv(t *testing.T) {
	t.Setenv("SEDPLOT_LUMINOSITIES", "44,46")
	out, err := runCLI(t, "table")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "44.00") || !strings.HasPrefix(lines[3], "46.00") {
		t.Fatalf("rows = %q, %q", lines[2], lines[3])
	}
}

func TestLuminosityFlagOverridesEnv(t *testing.T) {
	t.Setenv("SEDPLOT_LUMINOSITIES", "44,46")
	out, err := runCLI(t, "table", "-l", "45")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "45.00") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestExportCSV(t *testing.T) {
	out, err := runCLI(t, "export", "-l", "45")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+sed.Len {
		t.Fatalf("got %d lines, want %d", len(lines), 1+sed.Len)
	}
	if lines[0] != "log_lbol,band,log_nu,log_nu_lnu" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "45,IR,14.25,") {
		t.Fatalf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "45,X-ray,20.498502839442438,") {
		t.Fatalf("last row = %q", lines[len(lines)-1])
	}
}

func TestExportJSON(t *testing.T) {
	out, err := runCLI(t, "export", "-l", "43,47", "-f", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var curves []exportCurve
	if err := json.Unmarshal([]byte(out), &curves); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	if curves[1].LogLbol != 47 || len(curves[1].Points) != sed.Len {
		t.Fatalf("curve = log_lbol %v, %d points", curves[1].LogLbol, len(curves[1].Points))
	}
	if curves[0].Points[0].Band != "IR" || curves[0].Points[sed.Len-1].Band != "X-ray" {
		t.Fatalf("bands = %q .. %q", curves[0].Points[0].Band, curves[0].Points[sed.Len-1].Band)
	}
}

func TestExportNonFinite(t *testing.T) {
	for _, format := range []string{"csv", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			out, err := runCLI(t, "export", "-l", "nan", "-f", format)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			switch format {
			case "csv":
				if !strings.Contains(out, "\nNaN,IR,") {
					t.Fatalf("csv rows should carry NaN:\n%.200s", out)
				}
			case "json":
				if !json.Valid([]byte(out)) {
					t.Fatal("invalid json")
				}
				if !strings.Contains(out, `"log_lbol": null`) {
					t.Fatalf("NaN should encode as null:\n%.200s", out)
				}
			case "yaml":
				if !strings.Contains(out, "log_lbol: .nan") {
					t.Fatalf("NaN should encode as .nan:\n%.200s", out)
				}
			}
		})
	}
}

func TestExportYAMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sed.yaml")
	if _, err := runCLI(t, "export", "-l", "45", "-f", "yaml", "--file", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var curves []exportCurve
	if err := yaml.Unmarshal(data, &curves); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(curves) != 1 || len(curves[0].Points) != sed.Len {
		t.Fatalf("unexpected export: %d curves", len(curves))
	}
	want := sed.Compute(45)
	if float64(curves[0].AlphaOXL) != want.AlphaOXL {
		t.Fatalf("alpha_ox_l2500 = %v, want %v", curves[0].AlphaOXL, want.AlphaOXL)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeExport(&buf, "xml", []sed.Result{sed.Compute(45)})
	if !errors.Is(err, errUnknownFormat) {
		t.Fatalf("expected errUnknownFormat, got %v", err)
	}
}

func TestPlotCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sed.svg")
	if _, err := runCLI(t, "plot", "-o", path); err != nil {
		t.Fatalf("plot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatal("output is not an SVG document")
	}
}

func TestDefaultRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "demo.eps")
	cfgPath := filepath.Join(dir, "sedplot.yaml")
	content := "output: " + out + "\nlog_level: warn\nluminosities: [44]\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "--config", cfgPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty plot")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad luminosity", args: []string{"table", "-l", "abc"}},
		{name: "bad log level", args: []string{"table", "--log-level", "loud"}},
		{name: "unsupported image", args: []string{"plot", "-o", filepath.Join(t.TempDir(), "sed.ps")}},
		{name: "missing config", args: []string{"table", "--config", filepath.Join(t.TempDir(), "none.yaml")}},
		{name: "extra argument", args: []string{"table", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
