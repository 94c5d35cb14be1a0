package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListRuns(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	id1, err := s.SaveRun(ctx, "Residencial Aurora", 12, 45, []int{1, 2, 5})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	id2, err := s.SaveRun(ctx, "Residencial Aurora", 13, 48, []int{1, 2, 5, 9})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("run ids not increasing: %d then %d", id1, id2)
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].ID != id2 {
		t.Errorf("runs[0].ID = %d, want %d", runs[0].ID, id2)
	}
	if runs[0].ProjectDuration != 48 || runs[0].ActivityCount != 13 {
		t.Errorf("runs[0] = %+v", runs[0])
	}
	if len(runs[0].CriticalPath) != 4 || runs[0].CriticalPath[3] != 9 {
		t.Errorf("critical path = %v, want [1 2 5 9]", runs[0].CriticalPath)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestSaveRunEmptyCriticalPath(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	if _, err := s.SaveRun(ctx, "empty", 0, 0, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if runs[0].CriticalPath == nil || len(runs[0].CriticalPath) != 0 {
		t.Errorf("critical path = %#v, want empty non-nil slice", runs[0].CriticalPath)
	}
}

func TestOpenIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s1, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := s1.SaveRun(ctx, "p", 1, 2, []int{1}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	s1.Close()

	s2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	runs, err := s2.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
