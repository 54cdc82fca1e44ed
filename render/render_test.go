// SPDX-License-Identifier: MIT

package render_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/render"
	"github.com/katalvlaran/axisep/separator"
)

func TestImage_Bounds(t *testing.T) {
	pts := []separator.Point{{X: 1, Y: 10}, {X: 2, Y: 6}, {X: 3, Y: 8}, {X: 4, Y: 1}, {X: 5, Y: 3}}
	sol, err := separator.Solve(pts)
	require.NoError(t, err)

	opts := render.DefaultOptions()
	im, err := render.Image(pts, sol.Lines, opts)
	require.NoError(t, err)

	// bounding box plus one unit per side, scaled, plus padding on both sides
	b := im.Bounds()
	assert.Equal(t, 6*8+32, b.Dx())
	assert.Equal(t, 11*8+32, b.Dy())
}

func TestImage_BoundingBox(t *testing.T) {
	pts := []separator.Point{{X: 1000, Y: 1000}, {X: 1001, Y: 1002}}

	im, err := render.Image(pts, nil, render.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3*8+32, im.Bounds().Dx())
	assert.Equal(t, 4*8+32, im.Bounds().Dy())
}

func TestImage_HugeCoordinates(t *testing.T) {
	pts := []separator.Point{{X: 1, Y: 2}, {X: 1 << 40, Y: 1 << 40}}
	sol, err := separator.Solve(pts)
	require.NoError(t, err)

	var im image.Image
	require.NotPanics(t, func() {
		im, err = render.Image(pts, sol.Lines, render.DefaultOptions())
	})
	require.NoError(t, err)
	b := im.Bounds()
	assert.Positive(t, b.Dx())
	assert.Positive(t, b.Dy())
	assert.LessOrEqual(t, b.Dx(), render.DefaultMaxSize)
	assert.LessOrEqual(t, b.Dy(), render.DefaultMaxSize)
}

func TestImage_ShrinksToMaxSize(t *testing.T) {
	pts := []separator.Point{{X: 1, Y: 1}, {X: 999, Y: 499}}
	opts := render.DefaultOptions()
	opts.MaxSize = 200

	im, err := render.Image(pts, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 200, im.Bounds().Dx(), "the wider side fills the limit")
	assert.Less(t, im.Bounds().Dy(), 200)
}

func TestImage_PaddingLeavesNoRoom(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Padding = 100
	opts.MaxSize = 150

	_, err := render.Image([]separator.Point{{X: 1, Y: 1}}, nil, opts)
	require.ErrorIs(t, err, render.ErrTooLarge)
}

func TestImage_NoPoints(t *testing.T) {
	_, err := render.Image(nil, nil, render.DefaultOptions())
	require.ErrorIs(t, err, render.ErrNoPoints)
}

func TestSavePNG(t *testing.T) {
	pts := []separator.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	lines := []separator.Line{{Axis: separator.X, Intercept: 1.5}}
	path := filepath.Join(t.TempDir(), "two.png")

	require.NoError(t, render.SavePNG(path, pts, lines, render.Options{Scale: 10, Padding: 4, PointSize: 2, LineWidth: 1}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	im, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3*10+8, im.Bounds().Dx())
}
