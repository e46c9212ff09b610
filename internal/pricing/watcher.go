package pricing

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/davidbz/anyway/internal/observability"
)

const defaultDebounceInterval = 100 * time.Millisecond

// Reloader rebuilds pricing state after the catalog file changes.
type Reloader interface {
	Reload() error
}

// Watcher reloads a pricing catalog when its file changes.
// The parent directory is watched so that editors replacing the file by rename
// are picked up.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string, reloader Reloader, debounce time.Duration) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("pricing file path cannot be empty")
	}

	if reloader == nil {
		return nil, errors.New("reloader cannot be nil")
	}

	if debounce <= 0 {
		debounce = defaultDebounceInterval
	}

	return &Watcher{
		path:     filepath.Clean(path),
		reloader: reloader,
		debounce: debounce,
	}, nil
}

// Watch blocks until ctx is cancelled, reloading after each burst of changes.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if addErr := fsw.Add(filepath.Dir(w.path)); addErr != nil {
		return fmt.Errorf("failed to watch pricing directory: %w", addErr)
	}

	logger := observability.FromContext(ctx)
	logger.Info("pricing watcher started",
		observability.String("path", w.path),
		observability.Duration("debounce", w.debounce))

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			logger.Info("pricing watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}

			if !w.relevant(event) {
				continue
			}

			logger.Debug("pricing file event",
				observability.String("path", event.Name),
				observability.String("op", event.Op.String()))

			w.schedule(ctx)

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}

			logger.Error("pricing watcher error", observability.Error(watchErr))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		logger := observability.FromContext(ctx)

		if err := w.reloader.Reload(); err != nil {
			logger.Error("pricing reload failed, keeping previous catalog",
				observability.Error(err))
			return
		}

		logger.Info("pricing catalog reloaded", observability.String("path", w.path))
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
