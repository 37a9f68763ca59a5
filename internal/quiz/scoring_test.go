package quiz

import "testing"

func TestTimeBonus(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{1.0, 5},
		{0.9, 5},
		{0.81, 5},
		{0.8, 3}, // thresholds are strict
		{0.7, 3},
		{0.6, 1},
		{0.5, 1},
		{0.4, 0},
		{0.1, 0},
		{0, 0},
	}

	for _, tc := range tests {
		if got := TimeBonus(tc.fraction); got != tc.want {
			t.Errorf("TimeBonus(%v) = %d, want %d", tc.fraction, got, tc.want)
		}
	}
}

func TestRatingBands(t *testing.T) {
	tests := []struct {
		pct     float64
		rating  Rating
		message string
	}{
		{100, RatingPerfect, "Perfect! Outstanding work!"},
		{99.9, RatingExcellent, "Excellent! You're a math star!"},
		{80, RatingExcellent, "Excellent! You're a math star!"},
		{79.9, RatingGood, "Good job! Keep practicing!"},
		{60, RatingGood, "Good job! Keep practicing!"},
		{40, RatingNotBad, "Not bad! Room for improvement!"},
		{39.9, RatingKeepTrying, "Keep trying! Practice makes perfect!"},
		{0, RatingKeepTrying, "Keep trying! Practice makes perfect!"},
	}

	for _, tc := range tests {
		r := RatingFor(tc.pct)
		if r != tc.rating {
			t.Errorf("RatingFor(%v) = %v, want %v", tc.pct, r, tc.rating)
		}
		if r.Message() != tc.message {
			t.Errorf("RatingFor(%v).Message() = %q, want %q", tc.pct, r.Message(), tc.message)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(DifficultyEasy, 0, 0, nil)
	if s.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0", s.Percentage)
	}
	if s.Rating != RatingKeepTrying {
		t.Errorf("Rating = %v, want keep trying", s.Rating)
	}
}
