package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Drift verdicts reported by the Watcher.
const (
	DriftValid      = "valid"
	DriftIncomplete = "incomplete"
	DriftMalformed  = "malformed"
	DriftRemoved    = "removed"
)

// DriftEvent describes an on-disk change to a resource after it was
// published. The published document is never affected; applying the change
// requires a restart.
type DriftEvent struct {
	Path    string
	Verdict string
	Missing []Section
	Err     error
}

// Watcher reports edits to a published configuration resource.
type Watcher struct {
	path     string
	required RequiredSet
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	debounce *Debouncer

	mu      sync.Mutex
	running bool
}

// DefaultDebounceInterval collapses editor write bursts into one event.
const DefaultDebounceInterval = 200 * time.Millisecond

// NewWatcher creates a watcher for path. The parent directory is watched so
// that editors which replace the file by rename are still observed.
func NewWatcher(path string, required RequiredSet, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if required == nil {
		required = CurrentSchema
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		required: required,
		logger:   logger,
		watcher:  fw,
		debounce: NewDebouncer(DefaultDebounceInterval),
	}, nil
}

// Watch blocks until ctx is cancelled, calling onDrift after each burst of
// changes to the resource.
func (w *Watcher) Watch(ctx context.Context, onDrift func(DriftEvent)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.debounce.Stop()
		_ = w.watcher.Close()
	}()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("watching configuration resource", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("configuration resource event", "path", event.Name, "op", event.Op.String())
			w.debounce.Trigger(func() {
				onDrift(w.inspect())
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("configuration watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}

// inspect loads the resource as it is on disk now and classifies it.
func (w *Watcher) inspect() DriftEvent {
	ev := DriftEvent{Path: w.path}

	doc, err := Load(w.path)
	switch {
	case errors.Is(err, ErrResourceUnreadable):
		ev.Verdict = DriftRemoved
		ev.Err = err
		return ev
	case err != nil:
		ev.Verdict = DriftMalformed
		ev.Err = err
		return ev
	}

	if missing := Missing(doc, w.required); len(missing) > 0 {
		ev.Verdict = DriftIncomplete
		ev.Missing = missing
		return ev
	}
	ev.Verdict = DriftValid
	return ev
}

// Debouncer runs the most recent callback once no trigger has arrived for
// the configured interval.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
