package seedfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultDebounce collapses the burst of events an editor save produces into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a file after it changes. The parent directory is watched as well so atomic
// writes (write temp file, rename over) are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   func(ctx context.Context) error
	watcher  *fsnotify.Watcher
	logger   log.Logger

	mu        sync.Mutex
	debouncer *time.Timer
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path. reload is called after every debounced change.
func NewWatcher(path string, debounce time.Duration, reload func(ctx context.Context) error, logger log.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch seed file directory: %w", err)
	}

	return &Watcher{
		path:     absPath,
		debounce: debounce,
		reload:   reload,
		watcher:  watcher,
		logger:   log.WithPrefix(logger, "component", "SeedWatcher"),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watchLoop()
	level.Info(w.logger).Log("msg", "seed file watcher started", "file", w.path)
}

// Stop stops watching and cancels a pending reload.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.wg.Wait()

	w.mu.Lock()
	if w.debouncer != nil {
		w.debouncer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				level.Debug(w.logger).Log("msg", "seed file changed", "op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			level.Error(w.logger).Log("msg", "file watcher error", "err", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debouncer != nil {
		w.debouncer.Stop()
	}
	w.debouncer = time.AfterFunc(w.debounce, func() {
		if err := w.reload(context.Background()); err != nil {
			level.Error(w.logger).Log("msg", "seed file reload failed", "file", w.path, "err", err)
		}
	})
}
