// Package main provides the CLI entry point for snowplot.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/snowplot-go/internal/config"
	"github.com/ukaji3/snowplot-go/internal/logger"
	"github.com/ukaji3/snowplot-go/pkg/snowplot"
	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := snowplot.DefaultOptions()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "snowplot [dataset...]",
		Short: "Plot snow-algae model output",
		Long: `snowplot reads snow-algae model output ({input-dir}/{dataset}_o_{model}.csv)
and draws one time-series chart per variable to {output-dir}/{variable}_{dataset}.png.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")

	flags := rootCmd.Flags()
	flags.String("input-dir", defaults.InputDir, "Directory holding model CSV output")
	flags.String("output-dir", defaults.OutputDir, "Directory for charts and workbooks")
	flags.StringSlice("models", modelIDs(defaults.Models), "Model variants to plot, in legend order")
	flags.StringSlice("variables", variableNames(defaults.Variables), "Variables to plot")
	flags.Int("doy-min", defaults.DOYMin, "Lower day-of-year axis bound")
	flags.Int("doy-max", defaults.DOYMax, "Upper day-of-year axis bound")
	flags.Int("stride", defaults.Stride, "Plot every n-th record")
	flags.Bool("save", defaults.Save, "Write charts to files (false renders without saving)")
	flags.Bool("skip-first-row", defaults.Load.SkipFirstRow, "Drop the first data row of each CSV")
	flags.Bool("xlsx", false, "Also write loaded tables to {output-dir}/{dataset}.xlsx")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newVariablesCmd())

	return rootCmd
}

func run(cmd *cobra.Command, args []string, configPath string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input.Datasets = args
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if configPath != "" {
		log.Debugf("configuration loaded from %s", configPath)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = log

	report, err := snowplot.Run(cfg.Input.Datasets, opts)
	if err != nil {
		return err
	}

	log.Infof("%d files written, %d datasets skipped, %d failures",
		len(report.Written), len(report.Skipped), len(report.Failures))
	if report.Failed() {
		return fmt.Errorf("%d of the requested charts or datasets failed", len(report.Failures))
	}
	return nil
}

func newVariablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variables",
		Short: "List the plottable variables and their axis settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVariables(cmd.OutOrStdout())
		},
	}
}

func writeVariables(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tSCALE\tY-MIN\tY-MAX\tTHRESHOLD\tLABEL")
	for _, v := range models.Variables() {
		style, _ := v.Style()
		threshold := "-"
		if style.Threshold != nil {
			threshold = fmt.Sprintf("%g", *style.Threshold)
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%s\t%s\n",
			v, style.Scale, style.YMin, style.YMax, threshold, strings.ReplaceAll(style.Label, "\n", " "))
	}
	return w.Flush()
}

func modelIDs(ms []models.ModelVariant) []string {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

func variableNames(vs []models.Variable) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return names
}
