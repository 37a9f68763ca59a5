package core

import "time"

// Action represents a semantic action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionConfirm          // Enter - submit answer / activate default button
	ActionBackspace        // Backspace - delete last typed character
	ActionBack             // Esc - leave the review screen
	ActionRestart          // R - play again from the results screen
	ActionReview           // V - open the answer review
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBackspace:
		return "Backspace"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionReview:
		return "Review"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state as seen by one frame.
type Pointer struct {
	X, Y    int
	Clicked bool // A press edge happened since the previous frame
}

// InputFrame is the input consumed by a single frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Runes holds printable characters typed this frame, in order.
	Runes []rune
	// Pointer is the latest pointer position plus the click edge.
	Pointer Pointer
	// Time is the timestamp of the frame that consumes this input.
	Time time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a printable character typed this frame.
func (f *InputFrame) Type(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets actions and typed characters for the next frame.
// The pointer position is kept; the click edge is not.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
	f.Pointer.Clicked = false
}
