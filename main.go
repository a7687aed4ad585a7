package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xferstat/xferstat/chart"
	"github.com/xferstat/xferstat/xferstat"
)

var (
	BuildName       = "\b"
	BuildAnnotation = "git"
)

type CmdOpts struct {
	logLevel   string
	format     string
	kind       string
	out        string
	configPath string
}

func versionString() string {
	return fmt.Sprintf("xferstat %s (%s)", BuildName, BuildAnnotation)
}

// parseSeriesArg accepts LABEL=LOG, or a bare LOG labelled by its base name.
func parseSeriesArg(arg string) (string, string) {
	if label, path, ok := strings.Cut(arg, "="); ok && label != "" {
		return label, path
	}

	base := filepath.Base(arg)
	return strings.TrimSuffix(base, filepath.Ext(base)), arg
}

func newStatsCmd(opts *CmdOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats LOG...",
		Short: "Print per-value mean and standard deviation of experiment logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := log.New(cmd.OutOrStdout(), "", 0)
			return xferstat.RunAndPrint(printer, args, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", xferstat.FormatText, "Output format (text or json)")

	return cmd
}

func newPlotCmd(opts *CmdOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [LABEL=]LOG...",
		Short: "Render experiment logs as one comparison chart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment, err := xferstat.LookupExperiment(opts.kind)
			if err != nil {
				return err
			}

			style, err := chart.LoadStyle(opts.configPath, cmd.Flags())
			if err != nil {
				return err
			}

			series := []chart.Series{}
			var title string
			for index, arg := range args {
				label, path := parseSeriesArg(arg)
				report, err := xferstat.Summarize(path)
				if err != nil {
					return errors.Wrapf(err, "could not summarize %s", path)
				}
				if index == 0 {
					title = experiment.Title(report.Param1)
				}
				series = append(series, chart.Series{Label: label, Result: report.Result})
			}

			out := opts.out
			if out == "" {
				out = experiment.DefaultOutput
			}

			meta := chart.Meta{
				Title:  title,
				XLabel: experiment.XLabel,
				YLabel: experiment.YLabel,
			}
			if err := chart.Render(out, meta, style, series...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "delay", fmt.Sprintf("Experiment kind (%s)", strings.Join(xferstat.ExperimentKinds(), ", ")))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output image; defaults to <kind>-plot.pdf")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Chart style config file (TOML or YAML)")
	cmd.Flags().Float64("font-size", chart.DefaultStyle().FontSize, "Chart font size in points")

	return cmd
}

func newRootCmd() *cobra.Command {
	opts := &CmdOpts{}

	cmd := &cobra.Command{
		Use:           "xferstat",
		Short:         "Summarize and chart transfer experiment logs",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := xferstat.NewLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			xferstat.SetLogger(logger)
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Diagnostic log level (debug, info, warn, error)")

	cmd.AddCommand(newStatsCmd(opts), newPlotCmd(opts))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
