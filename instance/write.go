// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/axisep/separator"
)

// WriteSolution serializes lines to w: the count, then one "v|h intercept"
// per line in the given order.
func WriteSolution(w io.Writer, lines []separator.Line) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(lines))
	for _, l := range lines {
		fmt.Fprintf(bw, "%s %f\n", l.Axis.Marker(), l.Intercept)
	}

	return bw.Flush()
}

// WritePoints serializes points in instance format.
func WritePoints(w io.Writer, points []separator.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}

	return bw.Flush()
}
