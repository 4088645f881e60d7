package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestWatcher(t *testing.T, debounce time.Duration) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(debounce, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	t.Cleanup(func() { fw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fw.Start(ctx)
	return fw
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.obj")
	writeFile(t, model, "v 0 0 0\n")

	fw := newTestWatcher(t, 20*time.Millisecond)
	if err := fw.Watch(model); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeFile(t, model, "v 1 1 1\n")

	select {
	case got := <-fw.Changes():
		want, _ := filepath.Abs(model)
		if got != want {
			t.Errorf("Expected change for %s, got %s", want, got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for change event")
	}
}

func TestWatcherIgnoresUnwatchedSibling(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.obj")
	other := filepath.Join(dir, "notes.txt")
	writeFile(t, model, "v 0 0 0\n")

	fw := newTestWatcher(t, 20*time.Millisecond)
	if err := fw.Watch(model); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeFile(t, other, "hello")

	select {
	case got := <-fw.Changes():
		t.Errorf("Unexpected change event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	texture := filepath.Join(dir, "skin.png")
	writeFile(t, texture, "a")

	fw := newTestWatcher(t, 150*time.Millisecond)
	if err := fw.Watch(texture); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		writeFile(t, texture, "burst")
	}

	select {
	case <-fw.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for change event")
	}

	select {
	case got := <-fw.Changes():
		t.Errorf("Expected a single debounced event, got another for %s", got)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchReplacesSet(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.glb")
	second := filepath.Join(dir, "b.glb")
	writeFile(t, first, "a")
	writeFile(t, second, "b")

	fw := newTestWatcher(t, 20*time.Millisecond)
	if err := fw.Watch(first, ""); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := fw.Watch(second); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	watched := fw.Watched()
	want, _ := filepath.Abs(second)
	if len(watched) != 1 || watched[0] != want {
		t.Errorf("Expected only %s to be watched, got %v", want, watched)
	}
}
