// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned by NewComplete when n < 0.
	ErrNegativeSize = errors.New("connectivity: size must be >= 0")

	// ErrOutOfRange indicates that a point index is outside [0, n).
	ErrOutOfRange = errors.New("connectivity: index out of range")

	// ErrIntegrity signals that an internal invariant of the relation is
	// broken. It indicates a modelling bug, never bad input.
	ErrIntegrity = errors.New("connectivity: integrity violation")
)

// relationErrorf wraps err with the Relation method and offending indices.
func relationErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Relation.%s(%d,%d): %w", method, i, j, err)
}
