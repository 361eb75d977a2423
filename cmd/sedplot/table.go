package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sed/measure/bolcorr"
	"github.com/cwbudde/algo-sed/sed"
	"github.com/cwbudde/algo-sed/stats/band"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print summary parameters of each SED",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeTable(cmd.OutOrStdout(), a.compute())
		},
	}
}

func writeTable(w io.Writer, results []sed.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "log Lbol\tLbol check\tA_X\tA_O\talpha_OX grad\talpha_OX L2500\tpeak log nu\tK_B\tK_X\n"); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t----------\t---\t---\t-------------\t--------------\t-----------\t---\t---\n"); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}

	for _, r := range results {
		c := bolcorr.Calculate(r)
		s := band.Calculate(r.LogNu, r.LogNuLnu)
		if _, err := fmt.Fprintf(tw, "%.2f\t%.4e\t%.6g\t%.6g\t%.4f\t%.4f\t%.2f\t%.2f\t%.2f\n",
			r.LogLbol,
			r.Lbol,
			r.Norm.AX,
			r.Norm.AO,
			r.AlphaOXGradient,
			r.AlphaOXL,
			s.PeakLogNu,
			c.KB,
			c.KX,
		); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}
