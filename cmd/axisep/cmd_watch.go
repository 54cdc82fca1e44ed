// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisep/batch"
)

func newWatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Solve instance files as they appear in the input directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(a, cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = batch.Watch(ctx, opts, nil)
			if werr := opts.Recorder.WriteFile(a.cfg.MetricsFile); werr != nil {
				a.logger.Error("writing metrics failed", "error", werr)
			}

			return err
		},
	}
	f.register(cmd.Flags())

	return cmd
}
