// Package watch re-runs exports when the model snapshot file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures the snapshot watcher
type Config struct {
	// Path is the snapshot file to watch
	Path string

	// DebounceDelay is how long to wait for more changes before firing
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher watches one snapshot file and emits a trigger after each settled
// burst of writes. Editors commonly replace the file via rename, so the
// watch is installed on the parent directory and filtered by name.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   bool

	triggers chan struct{}
}

// NewWatcher creates a new snapshot watcher
func NewWatcher(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	debounce := config.DebounceDelay
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}
	config.DebounceDelay = debounce

	return &Watcher{
		config:   config,
		watcher:  fsw,
		logger:   logger,
		triggers: make(chan struct{}, 1),
	}, nil
}

// Triggers returns the channel that fires after each settled change
func (w *Watcher) Triggers() <-chan struct{} {
	return w.triggers
}

// Start begins watching the snapshot file for changes
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.config.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("snapshot watcher started",
		"path", w.config.Path,
		"debounce", w.config.DebounceDelay)
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	target := filepath.Clean(w.config.Path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.pendingMu.Lock()
				w.pending = true
				w.pendingMu.Unlock()
				w.logger.Debug("snapshot change detected", "op", event.Op.String())
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// flushPending emits a trigger when changes settled during the last tick
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	fire := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !fire {
		return
	}
	select {
	case w.triggers <- struct{}{}:
	default:
		// A trigger is already queued; the next run picks the change up.
	}
}
