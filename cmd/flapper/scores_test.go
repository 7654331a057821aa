package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/storage"
)

func TestPrintScoresEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("output = %q, want empty-history message", buf.String())
	}
}

func TestPrintScoresListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.RunRecord{
		{Score: 12, Level: "Easy", WallsPassed: 12},
		{Score: 40, Level: "Hard", WallsPassed: 30, EnemiesAvoided: 5},
		{Score: 7, Level: "Normal", WallsPassed: 7},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, 2); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Hard") || !strings.Contains(out, "Easy") {
		t.Errorf("output missing top runs:\n%s", out)
	}
	if strings.Contains(out, "Normal") {
		t.Errorf("limit 2 should drop the lowest run:\n%s", out)
	}
	if strings.Index(out, "Hard") > strings.Index(out, "Easy") {
		t.Errorf("runs not ordered by score:\n%s", out)
	}
	if !strings.Contains(out, "Best: 40  Runs: 3") {
		t.Errorf("output missing totals:\n%s", out)
	}
}
