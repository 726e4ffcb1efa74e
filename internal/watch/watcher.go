// Package watch notifies the UI when the directory a pane is showing
// changes on disk, so listings can be re-read without waiting for the next
// navigation.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"ferry/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change reports filesystem activity inside a watched directory.
type Change struct {
	Dir       string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher monitors the panes' current directories using fsnotify. The
// watched set is swapped wholesale on navigation via Rearm. Delivery is
// lossy: a full channel drops events, which is fine because any change
// just triggers a re-list.
type Watcher struct {
	// Channel to deliver directory changes
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the watched set
	mutex sync.RWMutex

	// Directories currently watched
	watched []string

	// Whether the watcher is running
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Rearm replaces the watched set with the given directories. Directories
// that cannot be added are skipped; a pane showing an unreadable directory
// already fell back elsewhere.
func (w *Watcher) Rearm(dirs ...string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, dir := range w.watched {
		if err := w.fsWatcher.Remove(dir); err != nil {
			log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("remove watch")
		}
	}
	w.watched = w.watched[:0]

	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			log.LogWithFields(log.F("directory", dir), log.F("error", err)).Warn("cannot watch directory")
			continue
		}
		w.watched = append(w.watched, dir)
	}
}

// Changes returns the channel that delivers directory change events
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the event processing loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	w.stopChan = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				change := Change{
					Dir:       filepath.Dir(event.Name),
					Op:        event.Op,
					Timestamp: time.Now(),
				}

				// Send non-blockingly so a full channel cannot stall the loop
				select {
				case w.changes <- change:
				default:
					log.LogWithFields(log.F("file", event.Name)).Debug("event channel full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Info("watcher started")
	return nil
}

// Stop halts the watcher and closes the change channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("error closing fsnotify watcher")
	}

	w.running = false
	close(w.changes)

	log.Info("watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Watched returns the directories currently being watched
func (w *Watcher) Watched() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, len(w.watched))
	copy(dirs, w.watched)
	return dirs
}
