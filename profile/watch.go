// SPDX-License-Identifier: Unlicense OR MIT

package profile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"pannable.org/pan"
)

// Watch monitors the profile at path and calls apply with the new
// tuning every time the file is rewritten with valid contents.
// Invalid rewrites are reported to onErr (which may be nil) and the
// previous tuning stays in effect. Watch returns once the watch is
// established; it stops when ctx is done.
//
// apply runs on the watcher goroutine. Hand the params over to the
// goroutine driving the area; pan.Area is not safe for concurrent
// use.
func Watch(ctx context.Context, path string, apply func(pan.Params), onErr func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	// Watch the directory rather than the file: editors and
	// config tools typically replace the file, which would drop a
	// direct watch.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("profile: %w", err)
	}
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				p, err := Load(path)
				if err != nil {
					if onErr != nil {
						onErr(err)
					}
					continue
				}
				apply(p)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if onErr != nil {
					onErr(err)
				}
			}
		}
	}()
	return nil
}
