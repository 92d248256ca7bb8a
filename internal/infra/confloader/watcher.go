package confloader

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to watched configuration files.
//
// The parent directory is watched rather than the file itself: editors
// that save via rename (vim, sed -i) replace the inode, and a watch on
// the old inode would go stale after the first save.
type Watcher struct {
	fsw  *fsnotify.Watcher
	log  *slog.Logger
	stop chan struct{}

	mu       sync.Mutex
	onChange []func(string)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger for the watcher.
func WithWatcherLogger(log *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = log
	}
}

// NewWatcher creates a configuration file watcher.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		log:  slog.Default(),
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch registers the file's parent directory with the watcher.
func (w *Watcher) Watch(path string) error {
	dir := filepath.Dir(path)
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.log.Debug("watching config directory", "dir", dir, "file", filepath.Base(path))
	return nil
}

// OnChange registers a callback invoked with the path of a changed
// file. Callbacks run on the watcher goroutine.
func (w *Watcher) OnChange(fn func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Start runs the event loop until Stop is called.
func (w *Watcher) Start() {
	w.log.Info("config watcher started")
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("config watcher error", "error", err)
		case <-w.stop:
			return
		}
	}
}

// StartAsync runs Start on its own goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop shuts the watcher down and releases the underlying fsnotify
// resources.
func (w *Watcher) Stop() error {
	close(w.stop)
	if err := w.fsw.Close(); err != nil {
		return err
	}
	w.log.Info("config watcher stopped")
	return nil
}

// handleEvent fires callbacks for writes and creates. Creates matter
// because rename-style saves surface as a Create of the watched name.
func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	w.log.Debug("config file changed", "file", ev.Name, "op", ev.Op.String())

	w.mu.Lock()
	callbacks := append(([]func(string))(nil), w.onChange...)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn(ev.Name)
	}
}
