package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFiles invokes callback whenever one of the given files is written.
// It blocks until the context is cancelled or the watcher fails.
func WatchFiles(ctx context.Context, paths []string, callback func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err = w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events:
			if ev.Op&fsnotify.Write == fsnotify.Write && watched[ev.Name] {
				callback()
			}
		case err = <-w.Errors:
			return err
		}
	}
}
