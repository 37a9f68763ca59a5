package quiz

// MaxPointsPerQuestion is one base point plus the largest time bonus.
const MaxPointsPerQuestion = 1 + 5

// TimeBonus returns the bonus for a correct answer given the fraction of the
// time limit still remaining at submission.
func TimeBonus(remainingFraction float64) int {
	switch {
	case remainingFraction > 0.8:
		return 5
	case remainingFraction > 0.6:
		return 3
	case remainingFraction > 0.4:
		return 1
	default:
		return 0
	}
}

// Outcome is the result of one question.
type Outcome struct {
	Correct  bool
	TimedOut bool
	Bonus    int
	Points   int
}

// score builds the outcome for an answer submitted with the given remaining fraction.
func score(correct bool, remainingFraction float64) Outcome {
	if !correct {
		return Outcome{}
	}
	bonus := TimeBonus(remainingFraction)
	return Outcome{Correct: true, Bonus: bonus, Points: 1 + bonus}
}

// Rating is the qualitative band shown on the results screen.
type Rating int

const (
	RatingKeepTrying Rating = iota
	RatingNotBad
	RatingGood
	RatingExcellent
	RatingPerfect
)

// RatingFor bands a percentage into a Rating.
func RatingFor(percentage float64) Rating {
	switch {
	case percentage >= 100:
		return RatingPerfect
	case percentage >= 80:
		return RatingExcellent
	case percentage >= 60:
		return RatingGood
	case percentage >= 40:
		return RatingNotBad
	default:
		return RatingKeepTrying
	}
}

// Message returns the results-screen message for the rating.
func (r Rating) Message() string {
	switch r {
	case RatingPerfect:
		return "Perfect! Outstanding work!"
	case RatingExcellent:
		return "Excellent! You're a math star!"
	case RatingGood:
		return "Good job! Keep practicing!"
	case RatingNotBad:
		return "Not bad! Room for improvement!"
	default:
		return "Keep trying! Practice makes perfect!"
	}
}

// Symbol returns a single glyph shown above the results score.
func (r Rating) Symbol() string {
	switch r {
	case RatingPerfect, RatingExcellent:
		return "★"
	case RatingGood:
		return "+"
	case RatingNotBad:
		return "•"
	default:
		return "↑"
	}
}

// Summary describes a finished (or in-progress) session for the results screen.
type Summary struct {
	Difficulty Difficulty
	Score      int
	MaxScore   int
	Correct    int
	Answered   int
	Total      int
	Percentage float64
	Rating     Rating
}

// Message is shorthand for s.Rating.Message().
func (s Summary) Message() string {
	return s.Rating.Message()
}

// summarize computes percentage against MaxPointsPerQuestion for every question.
func summarize(d Difficulty, total, scoreSum int, history []Record) Summary {
	maxScore := total * MaxPointsPerQuestion
	var pct float64
	if maxScore > 0 {
		pct = float64(scoreSum) / float64(maxScore) * 100
	}

	correct := 0
	for _, r := range history {
		if r.Outcome.Correct {
			correct++
		}
	}

	return Summary{
		Difficulty: d,
		Score:      scoreSum,
		MaxScore:   maxScore,
		Correct:    correct,
		Answered:   len(history),
		Total:      total,
		Percentage: pct,
		Rating:     RatingFor(pct),
	}
}
