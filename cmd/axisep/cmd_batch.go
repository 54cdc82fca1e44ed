// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/axisep/batch"
	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/metrics"
)

// batchFlags are the flags shared by batch and watch; each overrides the
// configuration only when set on the command line.
type batchFlags struct {
	input, output string
	first, last   int
	workers       int
	capacity      int
	onError       string
	renderDir     string
	metricsFile   string
}

func (f *batchFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "directory holding instance files")
	fs.StringVarP(&f.output, "output", "o", "", "directory receiving solution files")
	fs.IntVar(&f.first, "first", 0, "first instance number")
	fs.IntVar(&f.last, "last", 0, "last instance number")
	fs.IntVarP(&f.workers, "workers", "w", 0, "instances solved in parallel")
	fs.IntVar(&f.capacity, "capacity", 0, "largest accepted point count")
	fs.StringVar(&f.onError, "on-error", "", "failed instance policy: halt or skip")
	fs.StringVar(&f.renderDir, "render-dir", "", "write a PNG per solved instance here")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics here after the run")
}

// options merges changed flags into the configuration and builds batch.Options.
func (f *batchFlags) options(a *app, fs *pflag.FlagSet) (batch.Options, error) {
	cfg := a.cfg
	if fs.Changed("input") {
		cfg.InputDir = f.input
	}
	if fs.Changed("output") {
		cfg.OutputDir = f.output
	}
	if fs.Changed("first") {
		cfg.First = f.first
	}
	if fs.Changed("last") {
		cfg.Last = f.last
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if fs.Changed("on-error") {
		cfg.OnError = f.onError
	}
	if fs.Changed("render-dir") {
		cfg.RenderDir = f.renderDir
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return batch.Options{}, err
	}
	a.cfg = cfg

	policy, err := batch.ParsePolicy(cfg.OnError)
	if err != nil {
		return batch.Options{}, err
	}

	opts := batch.Options{
		Store:     cfg.Store(),
		First:     cfg.First,
		Last:      cfg.Last,
		Capacity:  cfg.Capacity,
		Workers:   cfg.Workers,
		Policy:    policy,
		Logger:    a.logger,
		RenderDir: cfg.RenderDir,
	}
	if cfg.MetricsFile != "" {
		opts.Recorder = metrics.NewRecorder()
	}

	return opts, nil
}

func newBatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve numbered instance files and write their solutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(a, cmd.Flags())
			if err != nil {
				return err
			}

			sum, runErr := batch.Run(cmd.Context(), opts)
			if err = opts.Recorder.WriteFile(a.cfg.MetricsFile); err != nil {
				a.logger.Error("writing metrics failed", "error", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "solved %d, incomplete %d, failed %d\n",
				sum.Solved, sum.Incomplete, sum.Failed)

			return batchExit(a, sum, runErr)
		},
	}
	f.register(cmd.Flags())

	return cmd
}

// batchExit maps the batch outcome to the command error. Running out of
// instance files after at least one success is how a batch normally ends.
func batchExit(a *app, sum *batch.Summary, err error) error {
	if err == nil {
		return nil
	}
	var ie *batch.InstanceError
	if errors.Is(err, instance.ErrNotFound) && errors.As(err, &ie) && sum.Solved+sum.Incomplete > 0 {
		a.logger.Info("no further instances", "next", ie.Instance)

		return nil
	}

	return err
}
