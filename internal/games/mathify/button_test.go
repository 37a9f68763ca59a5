package mathify

import (
	"testing"

	"github.com/vovakirdan/mathify/internal/core"
)

func TestButtonHover(t *testing.T) {
	b := NewButton("Go", core.ColorBlue, core.ColorBrightBlue)
	b.Rect = core.NewRect(10, 5, 8, 3)

	b.Update(12, 6)
	if !b.Hovered() {
		t.Fatal("pointer inside the rect should hover")
	}
	if b.expanded() {
		t.Error("hover should ease in, not jump")
	}

	for i := 0; i < 10; i++ {
		b.Update(12, 6)
	}
	if !b.expanded() {
		t.Error("button should expand after hovering for a few frames")
	}

	s := core.NewScreen(30, 10)
	b.Render(s)
	if s.Get(9, 5) != '┏' {
		t.Errorf("expanded button should draw a heavy box one cell wider, got %q", s.Get(9, 5))
	}
	if s.GetCell(13, 6).Color != core.ColorBrightBlue {
		t.Error("hovered label should use the hover color")
	}

	for i := 0; i < 10; i++ {
		b.Update(0, 0)
	}
	if b.Hovered() || b.expanded() {
		t.Error("button should settle back after the pointer leaves")
	}
}

func TestButtonClicked(t *testing.T) {
	b := NewButton("Go", core.ColorBlue, core.ColorBrightBlue)
	b.Rect = core.NewRect(0, 0, 4, 3)

	if b.Clicked(core.Pointer{X: 1, Y: 1}) {
		t.Error("hover without a click edge should not click")
	}
	if !b.Clicked(core.Pointer{X: 1, Y: 1, Clicked: true}) {
		t.Error("click inside the rect should register")
	}
	if b.Clicked(core.Pointer{X: 4, Y: 1, Clicked: true}) {
		t.Error("click on the right edge is outside the rect")
	}
}

func TestAnswerInput(t *testing.T) {
	var a AnswerInput

	if !a.Type('-') || a.Type('-') {
		t.Error("minus is only accepted as the first character")
	}
	for _, r := range "12345678901" {
		a.Type(r)
	}
	if len(a.Value()) != maxAnswerLen {
		t.Errorf("Value() = %q, expected %d characters", a.Value(), maxAnswerLen)
	}

	a.Clear()
	a.Backspace()
	if !a.Empty() {
		t.Error("backspace on empty input should be a no-op")
	}
	if a.Type('x') || a.Type(' ') {
		t.Error("non-digits should be rejected")
	}
}
