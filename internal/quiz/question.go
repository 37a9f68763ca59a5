package quiz

import "fmt"

// Operator is one of the four arithmetic operations.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the display symbol for the operator.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Apply computes a op b. Division is integer division.
func (op Operator) Apply(a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// Division operands are built from these ranges so the quotient is exact.
const (
	minDivisor  = 2
	maxDivisor  = 12
	minQuotient = 1
	maxQuotient = 12
)

// Rand is the random source used for question generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Question is a single generated arithmetic problem.
type Question struct {
	A      int
	B      int
	Op     Operator
	Answer int
}

// Text renders the question as "a op b".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d", q.A, q.Op, q.B)
}

// NewQuestion builds a question from explicit operands, ordering subtraction
// operands so the answer is never negative.
func NewQuestion(a, b int, op Operator) Question {
	if op == OpSub && a < b {
		a, b = b, a
	}
	return Question{A: a, B: b, Op: op, Answer: op.Apply(a, b)}
}

// Generate draws a fresh question for the given difficulty.
//
// Draw order is first operand, second operand, operator; a division then draws
// its divisor and quotient and discards the first two operands.
func Generate(d Difficulty, rng Rand) Question {
	p := d.Profile()

	a := randRange(rng, p.Min, p.Max)
	b := randRange(rng, p.Min, p.Max)
	op := p.Operators[rng.Intn(len(p.Operators))]

	if op == OpDiv {
		divisor := randRange(rng, minDivisor, maxDivisor)
		quotient := randRange(rng, minQuotient, maxQuotient)
		return Question{A: divisor * quotient, B: divisor, Op: OpDiv, Answer: quotient}
	}

	return NewQuestion(a, b, op)
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
