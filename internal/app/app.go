// Package app wires the filter, its word lists and the file watcher together.
// It provides lifecycle management for long-running use: create, start, stop.
package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/corey/bleep/internal/adapters/wordlist"
	"github.com/corey/bleep/internal/config"
	"github.com/corey/bleep/internal/ports"
	"github.com/corey/bleep/lists"
	"github.com/pkg/errors"
)

// App is the top-level container wiring all components together.
type App struct {
	Settings config.Settings
	Filter   *Guard
	Watcher  ports.Watcher // nil = word lists are loaded once

	log     *slog.Logger
	mu      sync.Mutex        // guards digests
	digests map[string]uint64 // xxhash of the last loaded content, by absolute path
	loaded  atomic.Int64      // entries accepted across all loads
	reloads atomic.Int64      // reloads that changed content
}

// Config holds initialization parameters for the App.
type Config struct {
	Settings config.Settings
	Logger   *slog.Logger  // default: slog.Default()
	Watcher  ports.Watcher // optional: enables hot reload of word lists
}

// New creates an App with the filter built and every bundled and file word
// list loaded. An unreadable list is logged and skipped. Does not start
// watching.
func New(cfg Config) (*App, error) {
	if _, err := config.ParseStrategy(string(cfg.Settings.Strategy)); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	a := &App{
		Settings: cfg.Settings,
		Filter:   NewGuard(BuildFilter(cfg.Settings, cfg.Logger)),
		Watcher:  cfg.Watcher,
		log:      cfg.Logger,
		digests:  make(map[string]uint64),
	}
	for _, name := range cfg.Settings.Builtins {
		n, _ := a.Filter.BulkLoad(wordlist.FS(lists.FS, lists.File(name)))
		a.loaded.Add(int64(n))
	}
	for _, p := range cfg.Settings.WordLists {
		a.loadWordList(p)
	}
	return a, nil
}

// Start begins watching the configured word lists. A watcher that cannot be
// set up is reported and the App keeps running with the lists it has.
func (a *App) Start() error {
	if a.Watcher == nil || len(a.Settings.WordLists) == 0 {
		return nil
	}
	if err := a.Watcher.Watch(a.Settings.WordLists, a.onWordListChanged); err != nil {
		a.log.Warn("word list watcher unavailable", "err", err)
	}
	return nil
}

// Stop shuts down the watcher. Safe to call multiple times.
func (a *App) Stop() error {
	if a.Watcher == nil {
		return nil
	}
	return a.Watcher.Stop()
}

// Loaded returns the number of word-list entries accepted so far.
func (a *App) Loaded() int { return int(a.loaded.Load()) }

// Reloads returns how many watcher events led to a reload.
func (a *App) Reloads() int { return int(a.reloads.Load()) }

// Stream redacts r line by line into w until r is exhausted or ctx is done.
// Cancellation is checked between lines.
func (a *App) Stream(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, a.Filter.Redact(sc.Text())); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read")
	}
	return nil
}

// Follow redacts every line f delivers into w until ctx is done or a write
// fails.
func (a *App) Follow(ctx context.Context, f ports.LineFollower, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var werr error
	f.Start(func(line string) {
		if werr != nil {
			return
		}
		if _, err := fmt.Fprintln(w, a.Filter.Redact(line)); err != nil {
			werr = errors.Wrap(err, "write")
			cancel()
		}
	})
	<-ctx.Done()
	f.Stop()
	return werr
}

// loadWordList performs the initial load of one list and records its digest.
func (a *App) loadWordList(path string) {
	n, err := a.Filter.BulkLoad(wordlist.File(path))
	a.loaded.Add(int64(n))
	if err != nil {
		return // reported by the filter
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if data, err := os.ReadFile(abs); err == nil {
		a.mu.Lock()
		a.digests[abs] = xxhash.Sum64(data)
		a.mu.Unlock()
	}
	a.log.Info("word list loaded", "source", path, "entries", n)
}

// onWordListChanged reloads a list after an edit. Loading is additive: words
// removed from the file stay in the filter until restart. Saves that leave
// the content unchanged are skipped.
func (a *App) onWordListChanged(absPath string) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		// Removed or mid-rename: forget the digest so the next version loads.
		a.mu.Lock()
		delete(a.digests, absPath)
		a.mu.Unlock()
		a.log.Warn("word list unreadable, keeping current words", "source", absPath, "err", err)
		return
	}

	sum := xxhash.Sum64(data)
	a.mu.Lock()
	if prev, ok := a.digests[absPath]; ok && prev == sum {
		a.mu.Unlock()
		a.log.Debug("word list unchanged", "source", absPath)
		return
	}
	a.digests[absPath] = sum
	a.mu.Unlock()

	n, err := a.Filter.BulkLoad(wordlist.Reader(absPath, bytes.NewReader(data)))
	a.loaded.Add(int64(n))
	a.reloads.Add(1)
	if err != nil {
		return
	}
	a.log.Info("word list reloaded", "source", absPath, "entries", n)
}
