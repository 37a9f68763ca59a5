package mathify

// maxAnswerLen caps the typed answer.
const maxAnswerLen = 10

// AnswerInput is the text field on the question screen.
// It accepts digits and a single leading minus sign.
type AnswerInput struct {
	buf []rune
}

// Type appends r if it is acceptable at the current position.
// Returns true if the rune was accepted.
func (a *AnswerInput) Type(r rune) bool {
	if len(a.buf) >= maxAnswerLen {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && len(a.buf) == 0:
	default:
		return false
	}
	a.buf = append(a.buf, r)
	return true
}

// Backspace removes the last character.
func (a *AnswerInput) Backspace() {
	if len(a.buf) > 0 {
		a.buf = a.buf[:len(a.buf)-1]
	}
}

// Clear empties the field.
func (a *AnswerInput) Clear() {
	a.buf = a.buf[:0]
}

// Value returns the typed text.
func (a *AnswerInput) Value() string {
	return string(a.buf)
}

// Empty reports whether nothing has been typed.
func (a *AnswerInput) Empty() bool {
	return len(a.buf) == 0
}
