package am

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// ChangeCallback is called once per debounced burst with the last file
// that changed.
type ChangeCallback func(path string) error

// Watcher watches a set of files (config, descriptors) and runs callbacks
// after they change. Callbacks never run concurrently.
type Watcher struct {
	files          map[string]bool
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.Mutex
	runMu          sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	lastPath       string
	logger         *zap.SugaredLogger
	done           chan struct{}
}

// NewWatcher watches paths. Parent directories are watched so that editors
// that save by rename are still seen.
func NewWatcher(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.NewArgumentNullError("paths")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:          make(map[string]bool, len(paths)),
		watcher:        fw,
		debouncePeriod: DefaultDebounce,
		logger:         logger.ComponentLogger("watcher"),
		done:           make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
		dirs[dir] = true
	}
	return w, nil
}

// SetDebounce changes the debounce period. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// WithLogger replaces the component logger.
func (w *Watcher) WithLogger(l *zap.SugaredLogger) *Watcher {
	w.logger = l
	return w
}

// OnChange registers a callback
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching in the background
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			w.logger.Debugw("Watched file changed",
				logger.FieldFile, abs,
				"op", event.Op.String())
			w.scheduleRun(abs)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) scheduleRun(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastPath = path
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.run)
}

func (w *Watcher) run() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.mu.Lock()
	path := w.lastPath
	callbacks := append([]ChangeCallback(nil), w.callbacks...)
	w.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(path); err != nil {
			w.logger.Errorw("Change callback failed",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
	}
}

// Stop stops watching
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
