package config

import "testing"

func testLevels() []Level {
	return DefaultConfig().Levels
}

func TestLevelManagerSelect(t *testing.T) {
	tests := []struct {
		selector string
		want     string
		wantErr  bool
	}{
		{"", "Easy", false},
		{"hard", "Hard", false},
		{"Normal", "Normal", false},
		{"2", "Normal", false},
		{"0", "", true},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.selector, func(t *testing.T) {
			m := NewLevelManager(testLevels(), ProgressionConfig{})
			err := m.Select(tc.selector)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Select(%q) failed: %v", tc.selector, err)
			}
			if got := m.Level(0).Name; got != tc.want {
				t.Errorf("Level(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestLevelManagerFixedWithoutProgression(t *testing.T) {
	m := NewLevelManager(testLevels(), ProgressionConfig{Enabled: false, PointsPerLevel: 5})

	for _, score := range []int{0, 5, 50, 500} {
		if idx := m.Index(score); idx != 0 {
			t.Errorf("Index(%d) = %d, expected 0 with progression disabled", score, idx)
		}
	}
}

func TestLevelManagerProgression(t *testing.T) {
	m := NewLevelManager(testLevels(), ProgressionConfig{Enabled: true, PointsPerLevel: 10})

	tests := []struct {
		score, want int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{25, 2},
		{1000, 2}, // capped at last level
	}
	for _, tc := range tests {
		if got := m.Index(tc.score); got != tc.want {
			t.Errorf("Index(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}

	if err := m.Select("Normal"); err != nil {
		t.Fatal(err)
	}
	if got := m.Index(10); got != 2 {
		t.Errorf("Index(10) from Normal = %d, expected 2", got)
	}
}
