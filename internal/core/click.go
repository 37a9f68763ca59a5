package core

// ClickState is the phase of the primary pointer button.
type ClickState int

const (
	ClickIdle     ClickState = iota // Button up, nothing pending
	ClickPressed                    // Button held down
	ClickReleased                   // Released since the last poll
)

// String returns a human-readable name for the state.
func (s ClickState) String() string {
	switch s {
	case ClickIdle:
		return "idle"
	case ClickPressed:
		return "pressed"
	case ClickReleased:
		return "released"
	default:
		return "unknown"
	}
}

// ClickTracker turns raw press/release events into one click edge per press.
//
// Events arrive between frames at any rate; the frame loop calls Poll once per
// frame. A press reports exactly one click no matter how long the button is
// held, and a press that is released before the next frame is still reported.
type ClickTracker struct {
	state   ClickState
	pending bool
}

// State returns the current phase.
func (c *ClickTracker) State() ClickState {
	return c.state
}

// Press records the button going down.
func (c *ClickTracker) Press() {
	if c.state != ClickPressed {
		c.pending = true
	}
	c.state = ClickPressed
}

// Release records the button going up.
func (c *ClickTracker) Release() {
	if c.state == ClickPressed {
		c.state = ClickReleased
	}
}

// Poll reports whether a click edge occurred since the previous poll and
// settles a released button back to idle.
func (c *ClickTracker) Poll() bool {
	clicked := c.pending
	c.pending = false
	if c.state == ClickReleased {
		c.state = ClickIdle
	}
	return clicked
}
