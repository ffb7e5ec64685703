package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc rebuilds content after a change on disk.
type ReloadFunc func(ctx context.Context) error

// Watcher watches a content directory (<dir>/<locale>/*.yaml) and calls the
// reload function once a burst of edits has settled.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	reload   ReloadFunc
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	stats WatcherStats
}

// WatcherStats counts watcher activity.
type WatcherStats struct {
	Events        int
	Reloads       int
	ReloadErrors  int
	LastEventPath string
	LastReload    time.Time
}

// NewWatcher creates a watcher for dir. A zero debounce uses 300ms.
func NewWatcher(dir string, reload ReloadFunc, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		reload:   reload,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.watcher.Close()
		close(w.doneCh)
		return err
	}
	for _, locale := range Supported {
		sub := filepath.Join(w.dir, string(locale))
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			if err := w.watcher.Add(sub); err != nil {
				logger.Warn("Failed to watch locale directory", zap.String("dir", sub), zap.Error(err))
			}
		}
	}
	logger.Info("Watching content directory", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	logger.Info("Content watcher stopped", zap.String("dir", w.dir))
}

// Stats returns a copy of the current counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		if err := w.watcher.Close(); err != nil {
			logger.Error("Failed to close content watcher", zap.Error(err))
		}
	}()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.handleEvent(event) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Content watcher error", zap.Error(err))

		case <-timer.C:
			pending = false
			w.runReload(ctx)
		}
	}
}

// handleEvent reports whether the event should trigger a reload.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}
			return false
		}
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
		return false
	}

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventPath = event.Name
	w.mu.Unlock()
	logger.Debug("Content change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	return true
}

func (w *Watcher) runReload(ctx context.Context) {
	err := w.reload(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.stats.ReloadErrors++
		logger.Warn("Content reload failed, keeping previous content", zap.Error(err))
		return
	}
	w.stats.Reloads++
	w.stats.LastReload = time.Now()
}
