// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisep/render"
	"github.com/katalvlaran/axisep/separator"
)

func newVerifyCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify INSTANCE SOLUTION",
		Short: "Check that a solution separates every pair of points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPoints(args[0])
			if err != nil {
				return err
			}
			lines, err := readLines(args[1])
			if err != nil {
				return err
			}
			if err = separator.Verify(points, lines); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d lines separate %d points\n", len(lines), len(points))

			return nil
		},
	}
}

func newRenderCmd(_ *app) *cobra.Command {
	var out string
	opts := render.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "render INSTANCE [SOLUTION]",
		Short: "Draw an instance, and optionally its solution, to a PNG",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPoints(args[0])
			if err != nil {
				return err
			}
			var lines []separator.Line
			if len(args) == 2 {
				if lines, err = readLines(args[1]); err != nil {
					return err
				}
			}

			return render.SavePNG(out, points, lines, opts)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "out.png", "PNG file to write")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "pixels per coordinate unit")
	cmd.Flags().IntVar(&opts.Padding, "padding", opts.Padding, "padding in pixels")

	return cmd
}
