package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hinananoha/booth-order-list/internal/config"
	"github.com/hinananoha/booth-order-list/internal/convert"
	"github.com/hinananoha/booth-order-list/internal/logger"
)

const defaultEnvFile = ".env"

type flags struct {
	file         string
	output       string
	unshipped    bool
	currentMonth bool
	rangeArg     string
	onMalformed  string
	summary      bool
	progress     bool
	envFile      string
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "booth-order-list -f <export.csv> -o <summary.csv> [-r <begin> <end> | -r '<json>' | -c]",
		Short: "Pivot a BOOTH order export into one row per order and one column per product",
		Long: `Reads the address-printing CSV exported from BOOTH and writes a Shift-JIS CSV
with one row per order and one column per product holding the ordered quantity.

The order window is given by --current-month, by --range with two YYYY-MM-DD
dates ("-" leaves a side open), or by --range with a JSON descriptor:
  {"type": "current-month"}
  {"type": "period", "begin": "2021-05-01", "end": "2021-05-31"}`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "BOOTH order export CSV (required)")
	fl.StringVarP(&f.output, "output", "o", "", "CSV file to write (required)")
	fl.BoolVarP(&f.unshipped, "unshipped", "u", false, "list only orders that are not shipped yet")
	fl.BoolVarP(&f.currentMonth, "current-month", "c", false, "only orders placed this calendar month")
	fl.StringVarP(&f.rangeArg, "range", "r", "", "order window: begin date followed by end date, or a JSON descriptor")
	fl.StringVar(&f.onMalformed, "on-malformed", config.OnMalformedAbort, "abort or skip when an order's product detail cannot be read")
	fl.BoolVar(&f.summary, "summary", false, "print per-product totals")
	fl.BoolVar(&f.progress, "progress", false, "show a progress bar")
	fl.StringVar(&f.envFile, "env-file", defaultEnvFile, "dotenv file with default settings")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("current-month", "range")

	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	env, err := config.LoadEnv(f.envFile)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(env.App)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

	window, err := resolveWindow(f.rangeArg, args, f.currentMonth, time.Now())
	if err != nil {
		return err
	}

	opts := config.Options{
		Input:         f.file,
		Output:        f.output,
		UnshippedOnly: f.unshipped,
		Window:        window,
		OnMalformed:   env.Defaults.OnMalformed,
		Progress:      env.Defaults.Progress,
		Summary:       env.Defaults.Summary,
	}
	if cmd.Flags().Changed("on-malformed") {
		opts.OnMalformed = f.onMalformed
	}
	if cmd.Flags().Changed("progress") {
		opts.Progress = f.progress
	}
	if cmd.Flags().Changed("summary") {
		opts.Summary = f.summary
	}

	_, err = convert.New(log, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run(opts)
	return err
}
