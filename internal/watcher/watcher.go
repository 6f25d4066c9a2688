// Package watcher provides debounced file watching for lecture mode: it
// observes the note overlay directory and reports batches of changed
// overlay files so the caller can rebuild the catalog and re-run.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/praxis-cli/praxis/internal/logging"
)

// ChangeHandler handles a debounced batch of changed overlay paths.
type ChangeHandler func(paths []string)

// NotesWatcher watches a notes directory for overlay changes with
// debouncing, so a burst of editor writes triggers a single re-run.
type NotesWatcher struct {
	watcher *fsnotify.Watcher
	logger  logging.Logger
	delay   time.Duration
	handler ChangeHandler

	mutex   sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// New creates a watcher over the given directory. The handler receives the
// deduplicated paths of overlay files that changed within one debounce
// window.
func New(dir string, delay time.Duration, logger logging.Logger, handler ChangeHandler) (*NotesWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &NotesWatcher{
		watcher: fsw,
		logger:  logger.WithComponent("watcher"),
		delay:   delay,
		handler: handler,
		pending: make(map[string]struct{}),
	}, nil
}

// Start runs the watch loop until ctx is cancelled.
func (w *NotesWatcher) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "file watcher error")
		}
	}
}

// Stop stops the watcher and releases its resources.
func (w *NotesWatcher) Stop() error {
	w.mutex.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mutex.Unlock()

	return w.watcher.Close()
}

func (w *NotesWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !isOverlay(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug(ctx, "overlay changed", "path", event.Name, "op", event.Op.String())

	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.pending[event.Name] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.flush)
}

func (w *NotesWatcher) flush() {
	w.mutex.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.mutex.Unlock()

	if len(paths) == 0 {
		return
	}

	w.handler(paths)
}

func isOverlay(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
