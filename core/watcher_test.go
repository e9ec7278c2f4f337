package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchForChanges_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := WatchForChanges([]string{dir}, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("edit"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification after write")
	}
}

func TestWatchForChanges_IgnoresMissingDir(t *testing.T) {
	w, err := WatchForChanges([]string{filepath.Join(t.TempDir(), "missing")}, func() {})
	if err != nil {
		t.Fatalf("expected watcher to start despite missing dir: %v", err)
	}
	_ = w.Close()
}

func TestWatcher_CloseStops(t *testing.T) {
	w, err := WatchForChanges([]string{t.TempDir()}, func() {})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
