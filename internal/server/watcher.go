package server

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// changeOps are the events that make a cached tree stale. Chmod alone is
// ignored.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to tree files. fsnotify watches the containing
// directories so that editors which replace a file on save are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string)
	logger   *slog.Logger

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool

	wg sync.WaitGroup
}

// NewWatcher starts a watcher that calls onChange with the absolute path of
// each watched file that is written, created, removed or renamed.
func NewWatcher(onChange func(path string), logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		logger:   logger,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	w.wg.Add(1)
	go w.processEvents()
	return w, nil
}

// Add starts watching path. Adding a path twice is a no-op.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	w.logger.Debug("watching tree file", "path", abs)
	return nil
}

// Watching reports whether path has been added.
func (w *Watcher) Watching(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&changeOps == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.Watching(path) {
				continue
			}
			w.logger.Debug("tree file changed", "path", path, "op", event.Op.String())
			w.onChange(path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}
