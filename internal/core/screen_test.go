package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorWall)
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).Color != ColorWall {
		t.Errorf("GetCell(5, 5).Color = %v, expected wall", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorDefault)
	s.SetColored(100, 0, 'A', ColorDefault)
	s.SetColored(0, -1, 'A', ColorDefault)
	s.SetColored(0, 100, 'A', ColorDefault)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Score: 7")

	if got := s.Row(1); !strings.HasPrefix(got, "  Score: 7") {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorText {
		t.Errorf("DrawText should use the text color, got %v", s.GetCell(2, 1).Color)
	}

	// Clipped at right edge
	s.DrawText(18, 0, "abcdef")
	if s.GetCell(19, 0).Rune != 'b' {
		t.Errorf("Get(19, 0) = %q, expected 'b'", s.GetCell(19, 0).Rune)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorWall)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			if inside && s.GetCell(x, y).Rune != '#' {
				t.Errorf("expected '#' at (%d, %d)", x, y)
			}
			if !inside && s.GetCell(x, y).Rune != ' ' {
				t.Errorf("expected ' ' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorText)

	if s.GetCell(0, 0).Rune != '┌' || s.GetCell(9, 0).Rune != '┐' || s.GetCell(0, 4).Rune != '└' || s.GetCell(9, 4).Rune != '┘' {
		t.Error("box corners not drawn")
	}
	if s.GetCell(5, 0).Rune != '─' || s.GetCell(0, 2).Rune != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColored(0, 0, 'a', ColorDefault)
	s.SetColored(2, 1, 'b', ColorDefault)

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'x', ColorDefault)
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
