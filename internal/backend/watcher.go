package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/mouse-menu/internal/config"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindTables Kind = iota
)

// Event conveys updated data or an error from the watched source.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

const reloadInterval = 250 * time.Millisecond

// Watcher loads the menu table file and, when watching is enabled, reloads it
// each time it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher emits the current tables for path and then follows changes to
// the file when watch is set. Rapid successive writes are coalesced over the
// debounce window.
func NewWatcher(path string, watch bool, debounce time.Duration) *Watcher {
	if strings.TrimSpace(path) != "" {
		path = filepath.Clean(path)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run(watch)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(watch bool) {
	defer w.wg.Done()

	if !w.emit(w.load()) {
		return
	}
	if !watch || w.path == "" {
		return
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.emit(w.watchError(fmt.Errorf("create file watcher: %w", err)))
		return
	}
	defer fsw.Close()
	// Editors often replace files instead of writing them in place, so the
	// directory is watched and events are filtered by name.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			events.Config.WatchError(w.path, err)
			return
		}
		w.emit(w.watchError(fmt.Errorf("watch %s: %w", dir, err)))
		return
	}

	throttle := newThrottle(reloadInterval)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path || !relevant(evt.Op) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if !w.emit(w.watchError(err)) {
				return
			}
		case <-timer.C:
			if !throttle.wait(w.ctx) || !w.emit(w.load()) {
				return
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename) || op.Has(fsnotify.Remove)
}

func (w *Watcher) load() Event {
	tables, err := config.LoadTables(w.path)
	return Event{Kind: KindTables, Data: tables, Err: err}
}

func (w *Watcher) watchError(err error) Event {
	events.Config.WatchError(w.path, err)
	return Event{Kind: KindTables, Err: err}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
