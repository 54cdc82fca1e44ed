// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/batch"
)

// TestWatch_SolvesNewInstance writes an instance after the watch starts and
// waits for a successful result.
func TestWatch_SolvesNewInstance(t *testing.T) {
	opts := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan batch.Result, 16)
	done := make(chan error, 1)
	go func() {
		done <- batch.Watch(ctx, opts, func(r batch.Result) {
			select {
			case results <- r:
			default:
			}
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(opts.Store.InstancePath(4), []byte(fivePoints), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(opts.Store.InputDir, "notes.txt"), []byte("ignored"), 0o644))

	deadline := time.After(5 * time.Second)
	for solved := false; !solved; {
		select {
		case r := <-results:
			require.Equal(t, 4, r.Instance)
			solved = r.Err == nil
			if solved {
				require.Equal(t, 4, r.Lines)
			}
		case <-deadline:
			t.Fatal("instance04 was not solved")
		}
	}

	cancel()
	require.NoError(t, <-done)
	_, err := os.Stat(opts.Store.SolutionPath(4))
	require.NoError(t, err)
}
