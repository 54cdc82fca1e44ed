// SPDX-License-Identifier: MIT

// Package render draws a point set and its separating lines to an image.
//
// Points are dots, vertical lines (Axis X) are drawn in blue and
// horizontal lines (Axis Y) in red, so a solution can be checked at a
// glance: every dot should sit alone in its cell.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/axisep/separator"
)

// DefaultMaxSize bounds the width and the height of a drawing, in pixels.
const DefaultMaxSize = 4096

var (
	// ErrNoPoints is returned when there is nothing to draw.
	ErrNoPoints = errors.New("render: no points")

	// ErrTooLarge is returned when the padding alone leaves no room for the
	// drawing within MaxSize.
	ErrTooLarge = errors.New("render: drawing does not fit the size limit")
)

// Options control the drawing.
type Options struct {
	Scale     float64 // pixels per coordinate unit, lowered to fit MaxSize
	Padding   int     // pixels around the bounding box
	PointSize float64 // dot radius in pixels
	LineWidth float64 // separator stroke width in pixels
	MaxSize   int     // largest width or height in pixels; 0 means DefaultMaxSize
}

// DefaultOptions returns Options suited to instances of up to a few hundred units.
func DefaultOptions() Options {
	return Options{
		Scale:     8,
		Padding:   16,
		PointSize: 3,
		LineWidth: 1,
		MaxSize:   DefaultMaxSize,
	}
}

// Image draws points and lines and returns the image. The y axis points
// up, like the plane the points live in. The drawing covers the bounding
// box of the points plus one unit on every side; when that box does not
// fit MaxSize at opts.Scale, the scale shrinks until it does.
func Image(points []separator.Point, lines []separator.Line, opts Options) (image.Image, error) {
	// 1. Validate and measure the bounding box
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	pad := max(float64(opts.Padding), 0)
	x0, y0 := float64(points[0].X), float64(points[0].Y)
	x1, y1 := x0, y0
	for _, p := range points[1:] {
		x0, x1 = min(x0, float64(p.X)), max(x1, float64(p.X))
		y0, y1 = min(y0, float64(p.Y)), max(y1, float64(p.Y))
	}
	x0--
	y0--
	x1++
	y1++

	// 2. Fit the box into MaxSize
	room := float64(opts.MaxSize) - 2*pad
	if room < 1 {
		return nil, fmt.Errorf("padding %d, max size %d: %w", opts.Padding, opts.MaxSize, ErrTooLarge)
	}
	scale := min(opts.Scale, room/(x1-x0), room/(y1-y0))
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("box %gx%g: %w", x1-x0, y1-y0, ErrTooLarge)
	}
	w := pixels((x1-x0)*scale+2*pad, opts.MaxSize)
	h := pixels((y1-y0)*scale+2*pad, opts.MaxSize)

	// 3. Canvas with a y-up coordinate system in point units
	dc := gg.NewContext(w, h)
	dc.InvertY()
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(pad, pad)
	dc.Scale(scale, scale)
	dc.Translate(-x0, -y0)

	// 4. Lines; gg strokes in device pixels, so the width is not scaled
	for _, l := range lines {
		if l.Axis == separator.X {
			dc.SetRGB(0.1, 0.3, 0.9)
			dc.DrawLine(l.Intercept, y0, l.Intercept, y1)
		} else {
			dc.SetRGB(0.9, 0.2, 0.1)
			dc.DrawLine(x0, l.Intercept, x1, l.Intercept)
		}
		dc.SetLineWidth(opts.LineWidth)
		dc.Stroke()
	}

	// 5. Points on top
	dc.SetRGB(0, 0, 0)
	for _, p := range points {
		dc.DrawCircle(float64(p.X), float64(p.Y), opts.PointSize/scale)
		dc.Fill()
	}

	return dc.Image(), nil
}

// pixels rounds a measured length up to whole pixels within [1, limit].
func pixels(v float64, limit int) int {
	return max(1, min(limit, int(math.Ceil(v))))
}

// SavePNG draws points and lines and writes the image to path.
func SavePNG(path string, points []separator.Point, lines []separator.Line, opts Options) error {
	im, err := Image(points, lines, opts)
	if err != nil {
		return err
	}

	return gg.SavePNG(path, im)
}
