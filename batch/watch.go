// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// Watch solves every instance file created or rewritten in the store's
// input directory until ctx is done. Failures are logged and passed to
// onResult but never stop the watch; a half-written file simply fails and
// is solved again on its next write event. onResult may be nil.
func Watch(ctx context.Context, opts Options, onResult func(Result)) error {
	opts = normalize(opts)
	dir := opts.Store.InputDir
	if dir == "" {
		dir = "."
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("batch: watcher: %w", err)
	}
	defer w.Close()
	if err = w.Add(dir); err != nil {
		return fmt.Errorf("batch: watch %s: %w", dir, err)
	}

	log := opts.Logger.With("watch_id", uuid.NewString())
	log.Info("watching for instances", "dir", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			n, ok := opts.Store.ParseNumber(ev.Name)
			if !ok {
				continue
			}
			r := solveOne(opts, log, n)
			if onResult != nil {
				onResult(r)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
