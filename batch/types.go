// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/metrics"
	"github.com/katalvlaran/axisep/separator"
)

// Policy decides what a failed instance does to the rest of the batch.
type Policy int

const (
	// PolicyHalt stops the batch at the first failed instance.
	PolicyHalt Policy = iota
	// PolicySkip records the failure and continues.
	PolicySkip
)

// ErrUnknownPolicy is returned by ParsePolicy.
var ErrUnknownPolicy = errors.New("batch: unknown error policy")

// ParsePolicy maps "halt" and "skip" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "halt":
		return PolicyHalt, nil
	case "skip":
		return PolicySkip, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// String returns "halt" or "skip".
func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}

	return "halt"
}

// Options configures Run and Watch.
type Options struct {
	Store instance.Store

	// First and Last bound the instance numbers Run visits, inclusive.
	First, Last int

	// Capacity is passed to every Solver; zero means separator.DefaultCapacity.
	Capacity int

	// Workers bounds parallel instances; values below 1 mean 1.
	Workers int

	Policy Policy

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// Recorder, if non-nil, receives per-instance metrics.
	Recorder *metrics.Recorder

	// RenderDir, if set, receives one PNG per solved instance.
	RenderDir string
}

// DefaultOptions returns Options for instances 1..99 in the working directory.
func DefaultOptions() Options {
	return Options{
		Store:    instance.NewStore("", ""),
		First:    1,
		Last:     99,
		Capacity: separator.DefaultCapacity,
		Workers:  1,
		Policy:   PolicyHalt,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Result is the outcome of one instance.
type Result struct {
	Instance int
	Points   int
	Lines    int
	Skipped  int
	Complete bool
	Err      error
}

// Summary is the outcome of one Run.
type Summary struct {
	ID uuid.UUID

	// Results lists every attempted instance in instance order.
	Results []Result

	Solved     int
	Incomplete int
	Failed     int
	Missing    int
}

// InstanceError ties a failure to its instance number.
type InstanceError struct {
	Instance int
	Err      error
}

func (e *InstanceError) Error() string {
	return fmt.Sprintf("batch: instance %02d: %v", e.Instance, e.Err)
}

func (e *InstanceError) Unwrap() error { return e.Err }
