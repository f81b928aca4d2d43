package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '#', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected '#' red", cell)
	}

	// Out-of-bounds writes are ignored and reads yield blanks.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(0, 10) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "héllo")

	if got := s.Row(1); !strings.HasPrefix(got, "  héllo") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  héllo")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)

	if s.Get(4, 0) != 'a' {
		t.Errorf("expected text centered at column 4, row is %q", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, '#', ColorGray)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorDefault)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if s.Get(c.x, c.y) != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content inside the new bounds should be preserved")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}
