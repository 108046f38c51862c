// Package watcher notifies the presenter when the deck file changes on
// disk, debouncing editor write bursts.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/log"
)

// FileWatcher implements deck watching on top of fsnotify. The parent
// directory is watched rather than the file itself because editors
// commonly replace files on save, which would drop an inode watch.
type FileWatcher struct {
	debounce time.Duration
	events   chan ports.FileChangeEvent

	mu      sync.Mutex
	fw      *fsnotify.Watcher
	stopped bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New creates a file watcher with the given debounce window.
func New(debounce time.Duration) *FileWatcher {
	return &FileWatcher{
		debounce: debounce,
		events:   make(chan ports.FileChangeEvent, 10),
		stopCh:   make(chan struct{}),
	}
}

// Watch starts watching a file for changes.
func (w *FileWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w.mu.Lock()
	w.fw = fw
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx, fw, absPath)
	}()

	return w.events, nil
}

// Stop stops the file watcher and closes the event channel.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	fw := w.fw
	close(w.stopCh)
	w.mu.Unlock()

	if fw != nil {
		_ = fw.Close()
	}
	w.wg.Wait()
	close(w.events)

	return nil
}

// run forwards debounced change events for the watched file.
func (w *FileWatcher) run(ctx context.Context, fw *fsnotify.Watcher, path string) {
	var pending *ports.FileChangeEvent
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			change := classify(ev.Op)
			pending = &ports.FileChangeEvent{
				Path:      path,
				Type:      change,
				Timestamp: time.Now(),
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case w.events <- *pending:
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
			pending = nil
		}
	}
}

// classify maps an fsnotify op to a change type.
func classify(op fsnotify.Op) ports.ChangeType {
	switch {
	case op.Has(fsnotify.Create):
		return ports.Created
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return ports.Removed
	default:
		return ports.Modified
	}
}
