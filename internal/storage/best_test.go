package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestBestFileMissingIsZero(t *testing.T) {
	b, err := NewBestFile(filepath.Join(t.TempDir(), "best.txt"))
	if err != nil {
		t.Fatalf("NewBestFile() failed: %v", err)
	}

	best, err := b.Load()
	if err != nil {
		t.Errorf("Load() on missing file returned error: %v", err)
	}
	if best != 0 {
		t.Errorf("Load() = %d, expected 0", best)
	}
}

func TestBestFileLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain", "42", 42, false},
		{"trailing newline", "42\n", 42, false},
		{"surrounding space", "  7 \n", 7, false},
		{"zero", "0", 0, false},
		{"garbage", "forty-two", 0, true},
		{"empty", "", 0, true},
		{"negative", "-5", 0, true},
		{"float", "4.2", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "best.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			b, _ := NewBestFile(path)

			got, err := b.Load()
			if (err != nil) != tc.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Load() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestBestFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "best.txt")
	b, _ := NewBestFile(path)

	if err := b.Save(1234); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := b.Save(56); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "56" {
		t.Errorf("file content = %q, expected %q", data, "56")
	}

	got, err := b.Load()
	if err != nil || got != 56 {
		t.Errorf("Load() = %d, %v; expected 56", got, err)
	}
}

func TestBestFileExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	b, err := NewBestFile("~/.flapper/best_score.txt")
	if err != nil {
		t.Fatalf("NewBestFile() failed: %v", err)
	}
	if want := filepath.Join(home, ".flapper", "best_score.txt"); b.Path() != want {
		t.Errorf("Path() = %q, expected %q", b.Path(), want)
	}
}

func TestBestFileSaveError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, _ := NewBestFile(filepath.Join(blocker, "best.txt"))

	if err := b.Save(10); err == nil {
		t.Error("Save() under a regular file should fail")
	}
}

func TestBestFileConcurrentAccess(t *testing.T) {
	b, _ := NewBestFile(filepath.Join(t.TempDir(), "best.txt"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			b.Save(v)
			b.Load()
		}(i)
	}
	wg.Wait()

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load() after concurrent saves failed: %v", err)
	}
	if got < 1 || got > 20 {
		t.Errorf("Load() = %d, expected one of the saved values", got)
	}
}

func TestBestFileRaiseNeverLowers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.txt")
	b, err := NewBestFile(path)
	if err != nil {
		t.Fatalf("NewBestFile() failed: %v", err)
	}

	steps := []struct {
		raise int
		want  int
	}{
		{raise: 10, want: 10},
		{raise: 5, want: 10},
		{raise: 10, want: 10},
		{raise: 12, want: 12},
	}
	for _, step := range steps {
		got, err := b.Raise(step.raise)
		if err != nil {
			t.Fatalf("Raise(%d) failed: %v", step.raise, err)
		}
		if got != step.want {
			t.Errorf("Raise(%d) = %d, expected %d", step.raise, got, step.want)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "12" {
		t.Errorf("file = %q, expected %q", data, "12")
	}
}

func TestBestFileRaiseOverwritesCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.txt")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := NewBestFile(path)
	if err != nil {
		t.Fatalf("NewBestFile() failed: %v", err)
	}

	if got, err := b.Raise(3); err != nil || got != 3 {
		t.Fatalf("Raise(3) = %d, %v; expected 3, nil", got, err)
	}
	if got, err := b.Load(); err != nil || got != 3 {
		t.Errorf("Load() = %d, %v; expected 3, nil", got, err)
	}
}
