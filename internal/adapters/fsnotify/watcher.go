// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directories holding the given word-list files, so editors that
// save by rename are still seen, reports only events on those files, and debounces
// rapid events (editors often trigger multiple writes per save) so one callback
// fires per burst.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// debounceInterval is the quiet period after the last event on a file
// before its callback fires.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex

	// onError receives watcher errors; nil drops them.
	onError func(error)
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "fsnotify")
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// OnError sets a callback for errors fsnotify reports while watching.
// Call before Watch.
func (w *Watcher) OnError(fn func(error)) {
	w.onError = fn
}

// Watch starts monitoring the given files. onChange is called with the
// absolute path of each changed file.
func (w *Watcher) Watch(paths []string, onChange func(filePath string)) error {
	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "resolve %s", p)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}

	// Debounce state: one pending timer per file, re-armed on every event,
	// so the callback sees the file after the editor's last write.
	timers := make(map[string]*time.Timer)

	go func() {
		defer func() {
			for _, t := range timers {
				t.Stop()
			}
		}()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !files[path] {
					continue
				}
				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
					continue
				}

				if t, exists := timers[path]; exists {
					t.Reset(debounceInterval)
					continue
				}
				timers[path] = time.AfterFunc(debounceInterval, func() {
					w.fire(path, onChange)
				})

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if w.onError != nil {
					w.onError(err)
				}

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// fire runs onChange unless the watcher has been stopped. Holding mu keeps
// Stop from returning while a callback is in flight.
func (w *Watcher) fire(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	onChange(path)
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
