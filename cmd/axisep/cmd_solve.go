// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/render"
	"github.com/katalvlaran/axisep/separator"
)

func newSolveCmd(a *app) *cobra.Command {
	var out, png string
	var capacity int
	cmd := &cobra.Command{
		Use:   "solve INSTANCE",
		Short: "Solve one instance file and print its solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPoints(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("capacity") {
				a.cfg.Capacity = capacity
				if err = a.cfg.Validate(); err != nil {
					return err
				}
			}
			capacity = a.cfg.Capacity

			sol, err := separator.Solve(points,
				separator.WithCapacity(capacity),
				separator.WithLogger(a.logger.With("instance", args[0])))
			if err != nil {
				return err
			}
			if !sol.Complete {
				a.logger.Warn("instance partially separated", "remaining", sol.Remaining)
			}

			if err = writeLines(cmd.OutOrStdout(), out, sol.Lines); err != nil {
				return err
			}
			if png != "" {
				return render.SavePNG(png, points, sol.Lines, render.DefaultOptions())
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "solution file (default stdout)")
	cmd.Flags().StringVar(&png, "png", "", "also render the solution to this PNG")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "largest accepted point count")

	return cmd
}

func readPoints(path string) ([]separator.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := instance.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

func readLines(path string) ([]separator.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := instance.ReadSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}

// writeLines writes the solution to path, or to stdout when path is empty.
func writeLines(stdout io.Writer, path string, lines []separator.Line) error {
	if path == "" {
		return instance.WriteSolution(stdout, lines)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = instance.WriteSolution(f, lines); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
