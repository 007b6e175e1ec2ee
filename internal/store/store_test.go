package store

import (
	"os"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndHistoryRoundTrip(t *testing.T) {
	s := openTestStore(t)

	run := NewRun(0xABCD, "Red Circle", "bfs", 9, 12345, 42*time.Millisecond)
	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(history))
	}
	if history[0].ID != run.ID || history[0].PathLength != 9 {
		t.Fatalf("recorded run does not match: %+v", history[0])
	}
}

func TestHistoryAccumulatesMultipleRuns(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		run := NewRun(uint64(i), "Spiral", "iddfs", i+1, 100*(i+1), time.Duration(i+1)*time.Millisecond)
		if err := s.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 recorded runs, got %d", len(history))
	}
}

func TestDatabaseDirIsCreated(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := DatabaseDir()
	if err != nil {
		t.Fatalf("DatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected database directory to exist: %v", err)
	}
}
