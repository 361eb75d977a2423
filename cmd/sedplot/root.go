package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sed/sed"
)

var errNoLuminosities = errors.New("no luminosities given")

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	root := &cobra.Command{
		Use:   "sedplot",
		Short: "Evaluate and plot the Marconi et al. (2004) AGN spectral energy distribution",
		Long: `sedplot evaluates the piecewise Marconi et al. (2004) SED of an active
supermassive black hole for one or more bolometric luminosities (log10 erg/s).

Without a subcommand it renders the demonstration figure for 43, 45 and 47.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runPlot,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringSliceP("lum", "l", []string{"43", "45", "47"}, "log10 bolometric luminosities in erg/s")
	pf.StringP("output", "o", "marconi_sed.eps", "output image (eps, svg, pdf, png)")
	mustBind(a.v, "log_level", pf.Lookup("log-level"))
	mustBind(a.v, "luminosities", pf.Lookup("lum"))
	mustBind(a.v, "output", pf.Lookup("output"))

	root.AddCommand(
		newPlotCmd(a),
		newTableCmd(a),
		newExportCmd(a),
	)
	return root
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// setup reads the config file and environment and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}
	a.v.SetEnvPrefix("SEDPLOT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("loaded config")
	}
	return nil
}

// compute evaluates the model for every configured luminosity.
func (a *app) compute() []sed.Result {
	results := make([]sed.Result, 0, len(a.cfg.Luminosities))
	for _, lum := range a.cfg.Luminosities {
		r := sed.Compute(lum)
		a.log.WithFields(logrus.Fields{
			"log_lbol":          lum,
			"lbol_check":        r.Lbol,
			"alpha_ox_gradient": r.AlphaOXGradient,
			"alpha_ox_l2500":    r.AlphaOXL,
		}).Debug("computed SED")
		results = append(results, r)
	}
	return results
}
