// SPDX-License-Identifier: MIT

package separator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/axisep/connectivity"
)

// DefaultCapacity is the largest point set accepted unless WithCapacity
// raises it. The relation costs n² cells, so this bounds memory per run.
const DefaultCapacity = 100

var (
	// ErrNoPoints is returned when the point set is empty.
	ErrNoPoints = errors.New("separator: no points")

	// ErrCapacityExceeded is returned when the point count exceeds Options.Capacity.
	ErrCapacityExceeded = errors.New("separator: point count exceeds capacity")

	// ErrNonPositiveCoordinate is returned when a coordinate is zero or negative.
	ErrNonPositiveCoordinate = errors.New("separator: coordinates must be > 0")

	// ErrDuplicateCoordinate is returned when two points share an x or a y.
	ErrDuplicateCoordinate = errors.New("separator: duplicate coordinate")

	// ErrUnknownLine is returned by Commit for a line that is not one of the
	// Solver's candidates.
	ErrUnknownLine = errors.New("separator: line is not a candidate")

	// ErrAlreadyCommitted is returned by Commit for a candidate committed earlier in the run.
	ErrAlreadyCommitted = errors.New("separator: line already committed")

	// ErrUnseparated is returned by Verify when some pair shares a side of every line.
	ErrUnseparated = errors.New("separator: pair not separated")

	// ErrIntegrity is the connectivity integrity sentinel, re-exported so
	// callers can match it without importing connectivity.
	ErrIntegrity = connectivity.ErrIntegrity
)

// Axis selects the coordinate a line splits on.
type Axis int

const (
	// X lines are vertical: they split points by x coordinate.
	X Axis = iota
	// Y lines are horizontal: they split points by y coordinate.
	Y
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Marker returns the solution-file marker of a line on this axis:
// "v" for vertical (X) and "h" for horizontal (Y).
func (a Axis) Marker() string {
	if a == X {
		return "v"
	}

	return "h"
}

// ParseMarker is the inverse of Marker.
func ParseMarker(s string) (Axis, error) {
	switch s {
	case "v":
		return X, nil
	case "h":
		return Y, nil
	default:
		return 0, fmt.Errorf("separator: unknown axis marker %q", s)
	}
}

// Coord returns the coordinate of p this axis splits on.
func (a Axis) Coord(p Point) int {
	if a == X {
		return p.X
	}

	return p.Y
}

// Point is one input point. Its index in the input slice is its identity.
type Point struct {
	X, Y int
}

// String formats the point as (x,y).
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Line is an axis-parallel line. Order is the line's position in its axis's
// candidate sequence; Committed flips to true when the driver adopts it.
type Line struct {
	Axis      Axis
	Intercept float64
	Committed bool
	Order     int
}

// Separates reports whether a and b lie strictly on opposite sides of l.
func (l Line) Separates(a, b Point) bool {
	ca, cb := float64(l.Axis.Coord(a)), float64(l.Axis.Coord(b))

	return (ca < l.Intercept && cb > l.Intercept) || (ca > l.Intercept && cb < l.Intercept)
}

// String formats the line the way solution files do, e.g. "v 2.500000".
func (l Line) String() string {
	return fmt.Sprintf("%s %f", l.Axis.Marker(), l.Intercept)
}

// Solution is the outcome of one Solve run.
type Solution struct {
	// Lines holds the committed lines in commit order.
	Lines []Line

	// Remaining is the connection count left at termination; each
	// unseparated pair counts twice. Zero means every pair is separated.
	Remaining int

	// Complete is Remaining == 0.
	Complete bool

	// Skipped counts candidates tested and rejected for lacking a live crossing.
	Skipped int

	// CandidatesX and CandidatesY are the lengths of the two candidate sequences.
	CandidatesX, CandidatesY int
}

// Option configures a Solver. Use with New(points, opts...).
type Option func(*Options)

// Options holds configurable parameters of a Solver.
type Options struct {
	// Capacity is the largest accepted point count. Default DefaultCapacity.
	Capacity int

	// Logger receives Debug records for every tested candidate.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnCommit, if non-nil, is invoked after a candidate is committed with
	// the number of pairs it separated.
	OnCommit func(l Line, separated int)

	// OnSkip, if non-nil, is invoked for a candidate that had no live crossing.
	OnSkip func(l Line)
}

// DefaultOptions returns Options with:
//   - Capacity = DefaultCapacity
//   - a discarding logger
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		Logger:   slog.New(slog.DiscardHandler),
		OnCommit: nil,
		OnSkip:   nil,
	}
}

// WithCapacity returns an Option that sets the point capacity.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithLogger returns an Option that installs a structured logger.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCommit returns an Option that installs fn as the commit hook.
func WithOnCommit(fn func(l Line, separated int)) Option {
	return func(o *Options) {
		o.OnCommit = fn
	}
}

// WithOnSkip returns an Option that installs fn as the skip hook.
func WithOnSkip(fn func(l Line)) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}
