package document

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events an editor save produces
// (truncate + write, or write-to-temp + rename) into a single reload.
const debounceWindow = 100 * time.Millisecond

// Watcher notifies a callback when the viewed file changes on disk.
//
// The file's directory is watched rather than the file itself: many editors
// replace files by rename, which would otherwise drop the watch.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string

	mu     sync.Mutex
	closed bool

	done chan struct{}
}

// WatchFile starts watching path and invokes onChange after each write,
// create, or rename touching it. The callback runs on the watcher goroutine.
func WatchFile(path string, onChange func()) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("document: resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("document: creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("document: watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		fw:   fw,
		path: absPath,
		done: make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(onChange func()) {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			onChange()

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable mid-session; the next
			// successful event still triggers a reload.
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Name != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
