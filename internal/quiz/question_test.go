package quiz

import (
	"math/rand"
	"testing"
)

// scriptedRand returns pre-set values in order, cycling when exhausted.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name       string
		difficulty Difficulty
		script     []int
		text       string
		answer     int
	}{
		{
			name:       "easy addition",
			difficulty: DifficultyEasy,
			script:     []int{6, 2, 0}, // 7, 3, +
			text:       "7 + 3",
			answer:     10,
		},
		{
			name:       "easy subtraction swaps operands",
			difficulty: DifficultyEasy,
			script:     []int{2, 14, 1}, // 3, 15, -
			text:       "15 - 3",
			answer:     12,
		},
		{
			name:       "medium multiplication",
			difficulty: DifficultyMedium,
			script:     []int{11, 4, 2}, // 12, 5, ×
			text:       "12 × 5",
			answer:     60,
		},
		{
			name:       "hard division from divisor and quotient",
			difficulty: DifficultyHard,
			script:     []int{0, 0, 3, 2, 8}, // discarded, discarded, ÷, divisor 4, quotient 9
			text:       "36 ÷ 4",
			answer:     9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := Generate(tc.difficulty, &scriptedRand{values: tc.script})
			if q.Text() != tc.text {
				t.Errorf("Text() = %q, want %q", q.Text(), tc.text)
			}
			if q.Answer != tc.answer {
				t.Errorf("Answer = %d, want %d", q.Answer, tc.answer)
			}
		})
	}
}

func TestGenerateProperties(t *testing.T) {
	for _, d := range Difficulties {
		t.Run(string(d), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			p := d.Profile()
			allowed := make(map[Operator]bool)
			for _, op := range p.Operators {
				allowed[op] = true
			}

			for i := 0; i < 2000; i++ {
				q := Generate(d, rng)

				if !allowed[q.Op] {
					t.Fatalf("operator %s not allowed for %s", q.Op, d)
				}
				if q.Answer != q.Op.Apply(q.A, q.B) {
					t.Fatalf("%s: answer %d does not match operands", q.Text(), q.Answer)
				}

				switch q.Op {
				case OpDiv:
					if q.A%q.B != 0 {
						t.Fatalf("%s leaves a remainder", q.Text())
					}
					if q.B < minDivisor || q.B > maxDivisor {
						t.Fatalf("%s: divisor out of range", q.Text())
					}
					if q.Answer < minQuotient || q.Answer > maxQuotient {
						t.Fatalf("%s: quotient out of range", q.Text())
					}
				case OpSub:
					if q.Answer < 0 {
						t.Fatalf("%s is negative", q.Text())
					}
					fallthrough
				default:
					if q.A < p.Min || q.A > p.Max || q.B < p.Min || q.B > p.Max {
						t.Fatalf("%s: operand outside [%d, %d]", q.Text(), p.Min, p.Max)
					}
				}
			}
		})
	}
}

func TestGenerateUsesEveryOperator(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Operator]bool)
	for i := 0; i < 500; i++ {
		seen[Generate(DifficultyHard, rng).Op] = true
	}
	for _, op := range DifficultyHard.Profile().Operators {
		if !seen[op] {
			t.Errorf("operator %s never generated", op)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"extreme", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProfileLabels(t *testing.T) {
	p := DifficultyMedium.Profile()
	if p.RangeLabel() != "1-50" {
		t.Errorf("RangeLabel() = %q, want %q", p.RangeLabel(), "1-50")
	}
	if p.OperatorLabel() != "+  -  ×" {
		t.Errorf("OperatorLabel() = %q, want %q", p.OperatorLabel(), "+  -  ×")
	}
}
