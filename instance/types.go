// SPDX-License-Identifier: MIT

package instance

import "errors"

// Default file name prefixes. Numbers are appended with two digits.
const (
	DefaultInstancePrefix = "instance"
	DefaultSolutionPrefix = "greedy_solution_"
)

var (
	// ErrNotFound indicates that the requested instance file does not exist.
	ErrNotFound = errors.New("instance: not found")

	// ErrNoPoints indicates an empty file, or a header that declares zero points.
	ErrNoPoints = errors.New("instance: no points")

	// ErrCountMismatch indicates that the header count differs from the
	// number of coordinate pairs actually present.
	ErrCountMismatch = errors.New("instance: declared count does not match points")

	// ErrMalformed indicates a token that is not an integer, a negative
	// header, or a coordinate without its partner.
	ErrMalformed = errors.New("instance: malformed input")
)
