// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/axisep/separator"
)

// Read parses one instance from r.
// Stage 1: header count (missing or zero -> ErrNoPoints).
// A header followed by no pairs is ErrNoPoints too.
// Stage 2: integer pairs until EOF.
// Stage 3: compare pair count with the header (ErrCountMismatch).
func Read(r io.Reader) ([]separator.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1. Header
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("instance: read header: %w", err)
		}

		return nil, ErrNoPoints
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("header %q: %w", sc.Text(), ErrMalformed)
	}
	if n == 0 {
		return nil, ErrNoPoints
	}

	// 2. Pairs
	points := make([]separator.Point, 0, n)
	var coords [2]int
	k := 0
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("pair %d: token %q: %w", len(points)+1, sc.Text(), ErrMalformed)
		}
		coords[k] = v
		k++
		if k == 2 {
			points = append(points, separator.Point{X: coords[0], Y: coords[1]})
			k = 0
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read pairs: %w", err)
	}
	if k != 0 {
		return nil, fmt.Errorf("pair %d: missing y: %w", len(points)+1, ErrMalformed)
	}

	// 3. Count check; a header with nothing after it is an empty instance
	if len(points) == 0 {
		return nil, fmt.Errorf("declared %d, found none: %w", n, ErrNoPoints)
	}
	if len(points) != n {
		return nil, fmt.Errorf("declared %d, found %d: %w", n, len(points), ErrCountMismatch)
	}

	return points, nil
}

// ReadSolution parses a solution written by WriteSolution.
func ReadSolution(r io.Reader) ([]separator.Line, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("instance: read solution header: %w", err)
		}

		return nil, fmt.Errorf("solution header missing: %w", ErrMalformed)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("solution header %q: %w", sc.Text(), ErrMalformed)
	}

	lines := make([]separator.Line, 0, n)
	for sc.Scan() {
		axis, err := separator.ParseMarker(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", len(lines)+1, err, ErrMalformed)
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("line %d: missing intercept: %w", len(lines)+1, ErrMalformed)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: intercept %q: %w", len(lines)+1, sc.Text(), ErrMalformed)
		}
		lines = append(lines, separator.Line{Axis: axis, Intercept: v, Committed: true, Order: len(lines)})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read solution: %w", err)
	}
	if len(lines) != n {
		return nil, fmt.Errorf("declared %d lines, found %d: %w", n, len(lines), ErrCountMismatch)
	}

	return lines, nil
}
