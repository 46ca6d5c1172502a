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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorCyan)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetBg(0, -1, Gray(10))
	s.SetBg(0, 100, Gray(10))

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenBackgroundSurvivesText(t *testing.T) {
	s := NewScreen(4, 1)
	s.FillBg(NewRect(0, 0, 4, 1), RGB{B: 200})
	s.DrawText(0, 0, "ab")

	cell := s.GetCell(1, 0)
	if cell.Rune != 'b' {
		t.Errorf("expected 'b', got %q", cell.Rune)
	}
	if !cell.HasBg || cell.Bg.B != 200 {
		t.Errorf("background lost after drawing text: %+v", cell)
	}

	s.Clear()
	if s.GetCell(1, 0).HasBg {
		t.Error("Clear should drop backgrounds")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawBoxTiny(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(1, 1, 1, 1), ColorWhite)
	if s.Get(1, 1) != '█' {
		t.Errorf("1x1 box should be a block, got %q", s.Get(1, 1))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetBg(1, 1, RGB{B: 200})
	s.FillRect(NewRect(1, 1, 2, 2), '#', ColorYellow)

	c := s.GetCell(1, 1)
	if c.Rune != '#' || c.Color != ColorYellow || !c.HasBg {
		t.Errorf("cell (1,1) = %+v, expected yellow '#' over kept background", c)
	}
	if s.Get(3, 3) != ' ' || s.Get(0, 0) != ' ' {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(0, 0, 4, 4, '*', ColorGreen)

	for i := 0; i <= 4; i++ {
		if s.Get(i, i) != '*' {
			t.Errorf("diagonal line missing at (%d, %d)", i, i)
		}
	}

	s.Clear()
	s.DrawLine(6, 2, 1, 2, '-', ColorGreen)
	for x := 1; x <= 6; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("reverse horizontal line missing at x=%d", x)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
