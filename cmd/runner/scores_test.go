package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store, 5); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintScoresWithRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []storage.Run{{Name: "Ann", Score: 10}, {Name: "Bob", Score: 30}, {Name: "Cy", Score: 20}} {
		if _, err := store.SubmitScore(r.Name, r.Score); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, 2); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"1. Bob - 30", "2. Cy - 20", "3. Ann - 10", "Runs played: 3", "Recent Runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Only the two newest runs are listed, newest first
	recent := out[strings.Index(out, "Recent Runs"):]
	if strings.Contains(recent, "Ann") {
		t.Errorf("oldest run should be cut by the limit:\n%s", recent)
	}
	if strings.Index(recent, "Cy") > strings.Index(recent, "Bob") {
		t.Errorf("recent runs should be newest first:\n%s", recent)
	}
}

func TestPrintScoresHidesRecentRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SubmitScore("Ann", 4); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	if _, err := store.RecordRun(storage.Run{Name: "Ann", Score: 4}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, 0); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if strings.Contains(buf.String(), "Recent Runs") {
		t.Errorf("recent runs should be hidden:\n%s", buf.String())
	}
}
