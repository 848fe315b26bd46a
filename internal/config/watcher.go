package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler receives the freshly loaded configuration after a file
// change. Load failures keep the previous configuration and are
// reported through the error handler instead.
type ReloadHandler func(config Config)

// ErrorHandler receives reload errors.
type ErrorHandler func(err error)

// WatchOption configures a Watcher.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce time.Duration
	onError  ErrorHandler
}

// WithDebounce sets the debounce interval for change events.
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.debounce = d
	}
}

// WithErrorHandler sets the handler for reload errors.
func WithErrorHandler(h ErrorHandler) WatchOption {
	return func(c *watchConfig) {
		c.onError = h
	}
}

// Watcher reloads a configuration file when it changes on disk.
// Editors typically replace files on save, so the watcher tracks the
// containing directory and filters events down to the target file.
type Watcher struct {
	mu sync.Mutex

	path    string
	watcher *fsnotify.Watcher
	handler ReloadHandler
	config  watchConfig

	closed  bool
	closeCh chan struct{}
	done    sync.WaitGroup
}

// Watch starts watching path and invokes handler with each
// successfully reloaded configuration.
func Watch(path string, handler ReloadHandler, opts ...WatchOption) (*Watcher, error) {
	config := watchConfig{debounce: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(&config)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		watcher: fsw,
		handler: handler,
		config:  config,
		closeCh: make(chan struct{}),
	}

	w.done.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.done.Wait()
	return err
}

// loop processes fsnotify events with debouncing.
func (w *Watcher) loop() {
	defer w.done.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.config.debounce)
			} else {
				timer.Reset(w.config.debounce)
			}
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// reload loads the file and delivers the result.
func (w *Watcher) reload() {
	config, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	w.handler(config)
}

// reportError delivers an error to the error handler, if set.
func (w *Watcher) reportError(err error) {
	if w.config.onError != nil {
		w.config.onError(err)
	}
}
