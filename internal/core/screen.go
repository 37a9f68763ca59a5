package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering.
// It decouples drawing from the terminal: screens draw runes and colors while
// the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; callers redraw
// every frame.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored draws colored text centered on row y.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	s.DrawTextColored((s.width-TextWidth(text))/2, y, text, c)
}

// DrawTextCenteredIn draws colored text centered within rect r on row y.
func (s *Screen) DrawTextCenteredIn(r Rect, y int, text string, c Color) {
	s.DrawTextColored(r.X+(r.W-TextWidth(text))/2, y, text, c)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using light box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.drawBox(r, c, '┌', '┐', '└', '┘', '─', '│')
}

// DrawRoundBox draws a box outline with rounded corners.
func (s *Screen) DrawRoundBox(r Rect, c Color) {
	s.drawBox(r, c, '╭', '╮', '╰', '╯', '─', '│')
}

// DrawHeavyBox draws a box outline with heavy lines.
func (s *Screen) DrawHeavyBox(r Rect, c Color) {
	s.drawBox(r, c, '┏', '┓', '┗', '┛', '━', '┃')
}

func (s *Screen) drawBox(r Rect, c Color, tl, tr, bl, br, h, v rune) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.SetColored(r.X, r.Y, tl, c)
	s.SetColored(r.Right()-1, r.Y, tr, c)
	s.SetColored(r.X, r.Bottom()-1, bl, c)
	s.SetColored(r.Right()-1, r.Bottom()-1, br, c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, h, c)
		s.SetColored(x, r.Bottom()-1, h, c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, v, c)
		s.SetColored(r.Right()-1, y, v, c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return utf8.RuneCountInString(text)
}
