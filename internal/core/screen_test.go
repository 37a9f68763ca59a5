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
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected ColorRed", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "36 ÷ 4")

	if got := strings.TrimRight(s.Row(0), " "); got != "36 ÷ 4" {
		t.Errorf("Row(0) = %q, expected %q", got, "36 ÷ 4")
	}
	if s.Get(5, 0) != '4' {
		t.Errorf("multi-byte rune should occupy one cell, got %q at x=5", s.Get(5, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}

	s.DrawTextCenteredColored(3, "× ÷", ColorBlue)
	x = (20 - 3) / 2
	if s.Get(x, 3) != '×' || s.GetCell(x, 3).Color != ColorBlue {
		t.Errorf("DrawTextCenteredColored should center by rune count")
	}
}

func TestScreenDrawTextCenteredIn(t *testing.T) {
	s := NewScreen(40, 5)
	r := NewRect(10, 0, 10, 5)
	s.DrawTextCenteredIn(r, 2, "abcd", ColorDefault)

	if s.Get(13, 2) != 'a' || s.Get(16, 2) != 'd' {
		t.Errorf("DrawTextCenteredIn: got row %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorYellow)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '#' || c.Color != ColorYellow {
				t.Errorf("DrawRect: expected yellow '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
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

func TestScreenDrawRoundAndHeavyBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRoundBox(NewRect(0, 0, 4, 3), ColorDefault)
	s.DrawHeavyBox(NewRect(5, 5, 4, 3), ColorRed)

	if s.Get(0, 0) != '╭' || s.Get(3, 2) != '╯' {
		t.Error("round box corners missing")
	}
	if s.Get(5, 5) != '┏' || s.GetCell(5, 5).Color != ColorRed {
		t.Error("heavy box corner missing or uncolored")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(1, 1, 1, 1), ColorDefault)
	if s.Get(1, 1) != ' ' {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
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
	if s.Row(0) != "        " {
		t.Errorf("Resize should clear the buffer, row 0 = %q", s.Row(0))
	}

	s.Set(7, 3, 'Z')
	if s.Get(7, 3) != 'Z' {
		t.Error("resized buffer should accept writes up to its new bounds")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if TextWidth(row) != 10 {
		t.Errorf("Row width should be 10, got %d", TextWidth(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
