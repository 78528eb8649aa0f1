// Package convert runs one export-to-summary conversion: read the BOOTH
// export, filter and decode its orders, pivot them and write the result.
package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/hinananoha/booth-order-list/internal/config"
	"github.com/hinananoha/booth-order-list/pkg/booth"
	"github.com/hinananoha/booth-order-list/pkg/report"
)

// Result counts what a run did with the export rows.
type Result struct {
	Rows      int
	Orders    int
	Dropped   int
	Malformed int
	Products  int
}

type Converter struct {
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// New returns a Converter. The summary table goes to stdout and the progress
// bar to stderr.
func New(log *zap.Logger, stdout, stderr io.Writer) *Converter {
	return &Converter{log: log, stdout: stdout, stderr: stderr}
}

// Run converts opts.Input into opts.Output. The output file is only written
// after every row has been processed; on error it is left untouched.
func (c *Converter) Run(opts config.Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := c.log.With(zap.String("run_id", uuid.NewString()))
	log.Debug("starting conversion",
		zap.String("input", opts.Input),
		zap.String("output", opts.Output),
		zap.Bool("unshipped", opts.UnshippedOnly),
		zap.Stringer("window", windowString(opts)),
		zap.String("on_malformed", opts.OnMalformed))

	exp, err := booth.ReadExport(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	res := &Result{Rows: len(exp.Rows)}
	filter := opts.Filter()
	pivot := report.NewPivot()
	bar := c.newProgressBar(len(exp.Rows), opts.Progress)

	for _, row := range exp.Rows {
		_ = bar.Add(1)

		keep, err := filter.Keep(row)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		if !keep {
			res.Dropped++
			continue
		}

		order, err := booth.NewOrder(row)
		if err != nil {
			if opts.SkipMalformed() && errors.Is(err, booth.ErrMalformedOrderDetail) {
				log.Warn("skipping order with malformed product detail", zap.Error(err))
				res.Malformed++
				continue
			}
			return nil, err
		}
		pivot.Add(order)
	}
	_ = bar.Finish()

	table := pivot.Table()
	res.Orders = pivot.Orders()
	res.Products = pivot.Catalog().Len()

	if err := report.WriteCSV(opts.Output, table); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	log.Info("summary written",
		zap.String("output", opts.Output),
		zap.Int("rows", res.Rows),
		zap.Int("orders", res.Orders),
		zap.Int("dropped", res.Dropped),
		zap.Int("malformed", res.Malformed),
		zap.Int("products", res.Products))

	if opts.Summary {
		summaries, err := report.Summarize(table)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		if err := report.PrintSummary(c.stdout, summaries, res.Orders); err != nil {
			return nil, fmt.Errorf("print summary: %w", err)
		}
	}

	return res, nil
}

func (c *Converter) newProgressBar(rows int, visible bool) *progressbar.ProgressBar {
	w := io.Discard
	if visible && c.stderr != nil {
		w = c.stderr
	}
	return progressbar.NewOptions(rows,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Processing orders"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[cyan]█[reset]",
			SaucerHead:    "[blue]█[reset]",
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}))
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }

func windowString(opts config.Options) fmt.Stringer {
	return stringerFunc(func() string {
		if opts.Window == nil {
			return "none"
		}
		return opts.Window.String()
	})
}
