// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/render"
	"github.com/katalvlaran/axisep/separator"
)

// Run solves instances opts.First..opts.Last and writes their solutions.
// The returned Summary is non-nil even when err is not; it covers every
// instance attempted before the batch stopped.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	// 1. Normalize options
	opts = normalize(opts)
	sum := &Summary{ID: uuid.New()}
	log := opts.Logger.With("batch_id", sum.ID.String())
	log.Info("batch started",
		"first", opts.First, "last", opts.Last,
		"workers", opts.Workers, "policy", opts.Policy.String())

	// 2. Fan out, one fresh Solver per instance
	count := opts.Last - opts.First + 1
	if count < 0 {
		count = 0
	}
	results := make([]Result, count)
	attempted := make([]bool, count)

	// halted is the lowest index whose result stopped the batch. Instances
	// above it are skipped, instances below it always run, so the reported
	// failure does not depend on worker timing.
	var halted atomic.Int64
	halted.Store(int64(count))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil || int64(i) > halted.Load() {
				return nil
			}
			attempted[i] = true
			results[i] = solveOne(opts, log, opts.First+i)

			herr := haltError(opts.Policy, results[i])
			if herr != nil {
				lowerTo(&halted, int64(i))
			}

			return herr
		})
	}
	err := g.Wait()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	// 3. Summarize in instance order
	for i := range results {
		if !attempted[i] {
			continue
		}
		r := results[i]
		sum.Results = append(sum.Results, r)
		switch {
		case errors.Is(r.Err, instance.ErrNotFound):
			sum.Missing++
		case r.Err != nil:
			sum.Failed++
		case !r.Complete:
			sum.Incomplete++
		default:
			sum.Solved++
		}
	}

	// 4. Workers may fail out of order; report the lowest halting instance
	var ie *InstanceError
	if errors.As(err, &ie) {
		for _, r := range sum.Results {
			if herr := haltError(opts.Policy, r); herr != nil {
				err = herr

				break
			}
		}
	}
	log.Info("batch finished",
		"solved", sum.Solved, "incomplete", sum.Incomplete,
		"failed", sum.Failed, "missing", sum.Missing)

	return sum, err
}

func normalize(opts Options) Options {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Capacity < 1 {
		opts.Capacity = separator.DefaultCapacity
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Store.InstancePrefix == "" {
		opts.Store.InstancePrefix = instance.DefaultInstancePrefix
	}
	if opts.Store.SolutionPrefix == "" {
		opts.Store.SolutionPrefix = instance.DefaultSolutionPrefix
	}

	return opts
}

// lowerTo stores v in a unless a already holds something smaller.
func lowerTo(a *atomic.Int64, v int64) {
	for {
		cur := a.Load()
		if v >= cur || a.CompareAndSwap(cur, v) {
			return
		}
	}
}

// haltError decides whether r stops the batch.
func haltError(p Policy, r Result) error {
	if r.Err == nil {
		return nil
	}
	if p == PolicyHalt || errors.Is(r.Err, separator.ErrIntegrity) {
		return &InstanceError{Instance: r.Instance, Err: r.Err}
	}

	return nil
}

// solveOne loads, solves, stores (and optionally renders) instance n.
func solveOne(opts Options, log *slog.Logger, n int) Result {
	start := time.Now()
	res := Result{Instance: n}
	ilog := log.With("instance", n)

	fail := func(err error) Result {
		res.Err = err
		if errors.Is(err, instance.ErrNotFound) {
			if opts.Policy == PolicySkip {
				ilog.Debug("instance missing", "error", err)
			} else {
				ilog.Info("instance missing, batch ends here")
			}

			return res
		}
		ilog.Error("instance failed", "error", err)
		opts.Recorder.ObserveFailed()

		return res
	}

	// 1. Load
	points, err := opts.Store.Load(n)
	if err != nil {
		return fail(err)
	}
	res.Points = len(points)

	// 2. Solve on fresh scratch state
	s, err := separator.New(points,
		separator.WithCapacity(opts.Capacity),
		separator.WithLogger(ilog))
	if err != nil {
		return fail(err)
	}
	sol, err := s.Solve()
	if err != nil {
		return fail(err)
	}
	res.Lines = len(sol.Lines)
	res.Skipped = sol.Skipped
	res.Complete = sol.Complete

	// 3. Persist
	if err = opts.Store.Save(n, sol.Lines); err != nil {
		return fail(err)
	}
	if opts.RenderDir != "" {
		if err = renderOne(opts, n, points, sol.Lines); err != nil {
			return fail(err)
		}
	}

	// 4. Report
	took := time.Since(start)
	opts.Recorder.ObserveSolved(res.Lines, res.Skipped, res.Complete, took)
	if !res.Complete {
		ilog.Warn("instance partially separated",
			"points", res.Points, "lines", res.Lines, "remaining", sol.Remaining)
	} else {
		ilog.Info("instance solved",
			"points", res.Points, "lines", res.Lines, "skipped", res.Skipped, "took", took)
	}

	return res
}

func renderOne(opts Options, n int, points []separator.Point, lines []separator.Line) error {
	if err := os.MkdirAll(opts.RenderDir, 0o755); err != nil {
		return fmt.Errorf("batch: create render dir: %w", err)
	}
	name := fmt.Sprintf("%s%02d.png", opts.Store.SolutionPrefix, n)

	return render.SavePNG(filepath.Join(opts.RenderDir, name), points, lines, render.DefaultOptions())
}
