package plan

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsWrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(validPlan), 0o644); err != nil {
		t.Fatalf("writing plan file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// Give the watcher loop a moment to arm before modifying the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte(validPlan+"\n"), 0o644); err != nil {
		t.Fatalf("modifying plan file: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event after modifying the plan file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := os.WriteFile(path, []byte(validPlan), 0o644); err != nil {
		t.Fatalf("writing plan file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing sibling file: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("got change event for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
