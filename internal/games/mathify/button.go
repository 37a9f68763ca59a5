package mathify

import "github.com/vovakirdan/mathify/internal/core"

// Hover animation constants
const (
	hoverScale = 1.05
	hoverEase  = 0.3
)

// Button is a clickable box with a centered label and an eased hover effect.
type Button struct {
	Rect       core.Rect
	Label      string
	Color      core.Color
	HoverColor core.Color

	hovered bool
	scale   float64
}

// NewButton creates a button at rest.
func NewButton(label string, color, hover core.Color) *Button {
	return &Button{Label: label, Color: color, HoverColor: hover, scale: 1}
}

// Update tracks the pointer and eases the scale toward its target.
func (b *Button) Update(px, py int) {
	b.hovered = b.Rect.Contains(px, py)
	target := 1.0
	if b.hovered {
		target = hoverScale
	}
	b.scale = core.Approach(b.scale, target, hoverEase)
}

// Clicked reports whether a click landed on the button this frame.
func (b *Button) Clicked(p core.Pointer) bool {
	return p.Clicked && b.Rect.Contains(p.X, p.Y)
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// expanded reports whether the hover animation has passed its midpoint.
func (b *Button) expanded() bool {
	return b.scale > (1+hoverScale)/2
}

// Render draws the button. A hovered button widens by one cell on each side.
func (b *Button) Render(dst *core.Screen) {
	r := b.Rect
	color := b.Color
	if b.hovered {
		color = b.HoverColor
	}

	if b.expanded() {
		r = r.Grow(1, 0)
		dst.DrawHeavyBox(r, color)
	} else {
		dst.DrawRoundBox(r, color)
	}

	_, cy := r.Center()
	dst.DrawTextCenteredIn(r, cy, b.Label, color)
}
