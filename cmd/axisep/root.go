// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisep/config"
	"github.com/katalvlaran/axisep/logging"
)

// app carries the state every subcommand shares once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "axisep",
		Short: "Separate planar point sets with axis-parallel lines",
		Long: `axisep computes, for a set of points with distinct positive integer
coordinates, a small set of vertical and horizontal lines such that every
pair of points lies on opposite sides of at least one line.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: auto, text, json")

	root.AddCommand(
		newBatchCmd(a),
		newSolveCmd(a),
		newVerifyCmd(a),
		newRenderCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the configuration, applies the logging flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	return nil
}
