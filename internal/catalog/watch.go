package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

// ReloadFunc receives the freshly loaded catalog, or the error that
// prevented loading it.
type ReloadFunc func(*Catalog, error)

// Watcher reloads a catalog source whenever a matching file changes.
// Editors commonly replace files instead of writing them in place, so the
// containing directories are watched rather than the files themselves.
type Watcher struct {
	pattern  string
	onReload ReloadFunc
	logger   *zap.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher

	timerMu sync.Mutex
	timer   *time.Timer

	mu       sync.Mutex
	stopped  bool
	stopChan chan struct{}
}

// NewWatcher prepares a watcher for a path or doublestar pattern.
func NewWatcher(pattern string, onReload ReloadFunc, logger *zap.Logger) (*Watcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("watch requires a catalog path")
	}
	if onReload == nil {
		return nil, fmt.Errorf("watch requires a reload callback")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		pattern:  pattern,
		onReload: onReload,
		logger:   logger,
		debounce: defaultDebounce,
		watcher:  fw,
		stopChan: make(chan struct{}),
	}, nil
}

// Start registers the watched directories and runs the event loop in the
// background.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	dirs, err := w.watchDirs()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.logger.Info("catalog watcher started", zap.String("pattern", w.pattern), zap.Strings("dirs", dirs))

	go w.loop()
	return nil
}

// Stop halts the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) watchDirs() ([]string, error) {
	if !IsPattern(w.pattern) {
		abs, err := filepath.Abs(w.pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve catalog path: %w", err)
		}
		return []string{filepath.Dir(abs)}, nil
	}

	base, _ := doublestar.SplitPattern(filepath.ToSlash(w.pattern))
	root := filepath.FromSlash(base)
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("catalog directory %s does not exist", root)
	}
	return dirs, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("catalog file event", zap.String("op", event.Op.String()), zap.String("file", event.Name))
			w.scheduleReload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if IsPattern(w.pattern) {
		name := filepath.ToSlash(filepath.Clean(event.Name))
		ok, _ := doublestar.Match(filepath.ToSlash(filepath.Clean(w.pattern)), name)
		return ok
	}
	want, err := filepath.Abs(w.pattern)
	if err != nil {
		return false
	}
	got, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return want == got
}

func (w *Watcher) scheduleReload() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}
	cat, err := LoadPattern(w.pattern)
	if err != nil {
		w.logger.Warn("catalog reload failed", zap.String("pattern", w.pattern), zap.Error(err))
	} else {
		w.logger.Info("catalog reloaded", zap.String("pattern", w.pattern), zap.Int("components", cat.Len()))
	}
	w.onReload(cat, err)
}
