package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notestore/pkg/core"
)

// watchBuffer is the capacity of the event channel handed to callers.
const watchBuffer = 64

type watchWorker struct {
	root    *Root
	pattern string
	events  chan core.Event
	watcher *fsnotify.Watcher
}

// Watch streams changes below the root whose logical path matches pattern
// (all changes when pattern is empty). The channel closes when ctx ends.
func (r *Root) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if r.host == "" {
		return nil, fmt.Errorf("%w: in-memory %s root cannot be watched", core.ErrUnsupportedBackend, r.kind)
	}
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", core.ErrInvalidPath, pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create watcher: %w", core.ErrIO, err)
	}
	if err := addRecursive(watcher, r.host); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w := &watchWorker{
		root:    r,
		pattern: pattern,
		events:  make(chan core.Event, watchBuffer),
		watcher: watcher,
	}

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watcher failed", "error", err)
	}))

	return w.events, nil
}

// addRecursive registers dir and every directory below it.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return mapErr("watch", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return mapErr("watch", path, err)
		}
		return nil
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			attrs := []any{"error", fmt.Errorf("watcher panic: %v", recovered)}
			if w.root.logger.Enabled(ctx, slog.LevelDebug) {
				attrs = append(attrs, "stack", string(debug.Stack()))
			}
			w.root.logger.Error("watcher panic", attrs...)
		}
	}()
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.root.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// processFilesystemEvent filters and maps a raw event, then forwards it.
// Returns true if the event was sent.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.root.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if isTemp(filepath.Base(event.Name)) {
		return false
	}

	rel, err := filepath.Rel(w.root.host, event.Name)
	if err != nil || rel == "." {
		return false
	}
	logical := filepath.ToSlash(rel)

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(w.watcher, event.Name); err != nil {
				w.root.logger.Warn("failed to watch new directory", "path", logical, "error", err)
			}
		}
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return false
	}

	if w.pattern != "" {
		if ok, _ := doublestar.Match(w.pattern, logical); !ok {
			return false
		}
	}

	select {
	case w.events <- core.Event{Type: eType, Path: logical, Timestamp: time.Now().Unix()}:
		return true
	case <-ctx.Done():
		return false
	}
}

var _ core.Watchable = (*Root)(nil)
