package core

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher fires a callback when anything under the watched directories
// changes. Events inside the debounce window are dropped so one save does
// not trigger a burst of reloads.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

const debounceWindow = 100 * time.Millisecond

var WatchForChanges = func(dirs []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fsw, done: make(chan struct{})}

	for _, dir := range dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err == nil && info.IsDir() {
				fsw.Add(path)
			}
			return nil
		})
	}

	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func()) {
	var last time.Time

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(last) < debounceWindow {
				continue
			}
			last = time.Now()
			onChange()
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
