// Package quiz implements the arithmetic quiz session: question generation,
// answer checking, time-bonus scoring and the welcome/question/feedback/results
// state machine. It has no terminal or rendering dependencies; callers pass in
// timestamps and a random source so every run can be replayed in tests.
package quiz

import (
	"fmt"
	"strings"
)

// Difficulty selects the operator set and operand range for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Profile describes how questions are generated for a difficulty.
type Profile struct {
	Operators []Operator
	Min       int // Smallest operand (inclusive)
	Max       int // Largest operand (inclusive)
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {Operators: []Operator{OpAdd, OpSub}, Min: 1, Max: 20},
	DifficultyMedium: {Operators: []Operator{OpAdd, OpSub, OpMul}, Min: 1, Max: 50},
	DifficultyHard:   {Operators: []Operator{OpAdd, OpSub, OpMul, OpDiv}, Min: 1, Max: 1000},
}

// ParseDifficulty converts user text into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := profiles[d]; !ok {
		return "", fmt.Errorf("quiz: unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	_, ok := profiles[d]
	return ok
}

// Profile returns the generation profile for d.
// Unknown difficulties fall back to the hard profile.
func (d Difficulty) Profile() Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyHard]
}

// Title returns a capitalized display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// RangeLabel returns the operand range as shown on the welcome screen, e.g. "1-20".
func (p Profile) RangeLabel() string {
	return fmt.Sprintf("%d-%d", p.Min, p.Max)
}

// OperatorLabel returns the operator set separated by double spaces, e.g. "+  -  ×".
func (p Profile) OperatorLabel() string {
	parts := make([]string, len(p.Operators))
	for i, op := range p.Operators {
		parts[i] = op.String()
	}
	return strings.Join(parts, "  ")
}
