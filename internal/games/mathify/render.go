package mathify

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/mathify/internal/core"
	"github.com/vovakirdan/mathify/internal/quiz"
)

// Layout sizes in cells
const (
	buttonH        = 3
	difficultyW    = 14
	difficultyGap  = 4
	resultsButtonW = 14
	resultsGap     = 3
	submitW        = 16
	cardW          = 50
	titleCardW     = 44
	inputW         = 20
)

// Timer color thresholds
const (
	timerSafe = 10 * time.Second
	timerWarn = 5 * time.Second
)

// welcomeTop is the first row of the welcome layout.
func (g *Game) welcomeTop() int {
	return max(1, (g.screenH-20)/2)
}

// questionTop is the first row of the question layout.
func (g *Game) questionTop() int {
	return max(0, (g.screenH-MinHeight)/2)
}

// resultsTop is the first row of the results card.
func (g *Game) resultsTop() int {
	return max(0, (g.screenH-18)/2)
}

// layout positions every button for the current screen size.
func (g *Game) layout() {
	cx := g.screenW / 2

	top := g.welcomeTop()
	total := 3*difficultyW + 2*difficultyGap
	x := cx - total/2
	for i, b := range g.difficultyButtons {
		b.Rect = core.NewRect(x+i*(difficultyW+difficultyGap), top+10, difficultyW, buttonH)
	}

	g.submitButton.Rect = core.NewRect(cx-submitW/2, g.questionTop()+18, submitW, buttonH)

	top = g.resultsTop()
	total = 3*resultsButtonW + 2*resultsGap
	x = cx - total/2
	for i, b := range []*Button{g.playAgainButton, g.reviewButton, g.exitButton} {
		b.Rect = core.NewRect(x+i*(resultsButtonW+resultsGap), top+14, resultsButtonW, buttonH)
	}
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Particles go underneath so text stays readable
	g.burst.Render(dst)

	switch g.session.State() {
	case quiz.StateWelcome:
		g.renderWelcome(dst)
	case quiz.StateQuestion:
		g.renderQuestion(dst)
	case quiz.StateFeedback:
		g.renderFeedback(dst)
	case quiz.StateResults:
		g.renderResults(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y-1, "Terminal too small", core.ColorRed)
	dst.DrawTextCenteredColored(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, g.screenW, g.screenH), core.ColorGray)
}

func (g *Game) renderWelcome(dst *core.Screen) {
	top := g.welcomeTop()
	cx := g.screenW / 2

	card := core.NewRect(cx-titleCardW/2, top, titleCardW, 7)
	dst.DrawRoundBox(card, g.pulseColor(core.ColorBlue, core.ColorBrightBlue))
	dst.DrawTextCenteredIn(card, top+2, "M A T H I F Y", core.ColorBrightBlue)
	dst.DrawTextCenteredIn(card, top+4, "Test Your Math Skills", core.ColorWhite)

	dst.DrawTextCenteredColored(top+8, "Choose your difficulty level", core.ColorGray)

	for i, b := range g.difficultyButtons {
		b.Render(dst)
		p := quiz.Difficulties[i].Profile()
		dst.DrawTextCenteredIn(b.Rect, top+14, p.RangeLabel(), core.ColorGray)
		dst.DrawTextCenteredIn(b.Rect, top+15, p.OperatorLabel(), core.ColorGray)
	}

	dst.DrawTextCenteredColored(g.screenH-1, "1/2/3 or click to choose  •  q quit", core.ColorDarkGray)
}

func (g *Game) renderQuestion(dst *core.Screen) {
	top := g.questionTop()
	cx := g.screenW / 2
	s := g.session

	// Progress bar
	barW := min(cardW+10, g.screenW-8)
	g.drawBar(dst, cx-barW/2, top+1, barW, g.progress, core.ColorBlue)

	// Stats
	stats := core.NewRect(cx-barW/2, top+2, barW, 3)
	dst.DrawRoundBox(stats, core.ColorDarkGray)
	dst.DrawTextColored(stats.X+2, top+3, fmt.Sprintf("Question %d of %d", s.Index(), s.Total()), core.ColorWhite)
	scoreText := fmt.Sprintf("Score: %d pts", s.Score())
	dst.DrawTextColored(stats.Right()-2-core.TextWidth(scoreText), top+3, scoreText, core.ColorGold)

	// Timer
	remaining := s.Remaining()
	color := timerColor(remaining)
	timerY := top + 6
	if color == core.ColorRed && int(remaining.Seconds()*2)%2 == 0 {
		timerY++
	}
	secs := int(math.Ceil(remaining.Seconds()))
	timerBarW := 30
	label := fmt.Sprintf("%2ds ", secs)
	x := cx - (timerBarW+core.TextWidth(label))/2
	dst.DrawTextColored(x, timerY, label, color)
	g.drawBar(dst, x+core.TextWidth(label), timerY, timerBarW, s.RemainingFraction(), color)

	// Question card
	card := core.NewRect(cx-cardW/2, top+8, cardW, 9)
	dst.DrawRoundBox(card, core.ColorBlue)
	dst.DrawTextCenteredIn(card, top+9, "What is:", core.ColorGray)
	dst.DrawTextCenteredIn(card, top+11, s.Question().Text()+" = ?", g.pulseColor(core.ColorBrightBlue, core.ColorBrightWhite))

	input := core.NewRect(cx-inputW/2, top+13, inputW, 3)
	text, textColor := g.answer.Value(), core.ColorBrightWhite
	if g.answer.Empty() {
		text, textColor = "?", core.ColorGray
	}
	dst.DrawBox(input, core.ColorWhite)
	dst.DrawTextCenteredIn(input, top+14, text, textColor)

	g.submitButton.Render(dst)

	dst.DrawTextCenteredColored(g.screenH-1, "type answer  •  enter submit  •  q quit", core.ColorDarkGray)
}

func (g *Game) renderFeedback(dst *core.Screen) {
	s := g.session
	out := s.LastOutcome()
	top := max(0, (g.screenH-13)/2)
	cx := g.screenW / 2

	var headline, subtext string
	var color, bright core.Color
	switch {
	case out.Correct:
		headline, subtext = "GREAT JOB!", "Correct!"
		color, bright = core.ColorGreen, core.ColorBrightGreen
	case out.TimedOut:
		headline, subtext = "TOO SLOW!", "Time's Up!"
		color, bright = core.ColorRed, core.ColorBrightRed
	default:
		headline, subtext = "OOPS!", "Incorrect"
		color, bright = core.ColorRed, core.ColorBrightRed
	}

	card := core.NewRect(cx-cardW/2, top, cardW, 13)
	dst.DrawRoundBox(card, color)
	dst.DrawTextCenteredIn(card, top+2, headline, g.pulseColor(color, bright))
	if out.Correct && out.Bonus > 0 {
		dst.DrawTextCenteredIn(card, top+4, fmt.Sprintf("+%d Time Bonus!", out.Bonus), core.ColorGold)
	}
	dst.DrawTextCenteredIn(card, top+6, subtext, color)
	if !out.Correct {
		dst.DrawTextCenteredIn(card, top+8, fmt.Sprintf("The correct answer was %d", s.Question().Answer), core.ColorWhite)
	}
	dst.DrawTextCenteredIn(card, top+10, fmt.Sprintf("Current Score: %d pts", s.Score()), core.ColorGold)
}

func (g *Game) renderResults(dst *core.Screen) {
	sum := g.session.Summary()
	top := g.resultsTop()
	cx := g.screenW / 2
	color := ratingColor(sum.Rating)

	card := core.NewRect(cx-cardW/2, top, cardW, 13)
	dst.DrawRoundBox(card, color)
	dst.DrawTextCenteredIn(card, top+2, "Quiz Complete!", core.ColorBrightWhite)
	dst.DrawTextCenteredIn(card, top+4, sum.Rating.Symbol(), g.pulseColor(color, core.ColorGold))
	dst.DrawTextCenteredIn(card, top+6, fmt.Sprintf("%d pts", sum.Score), color)
	dst.DrawTextCenteredIn(card, top+8, fmt.Sprintf("%.1f%%", sum.Percentage), core.ColorWhite)
	dst.DrawTextCenteredIn(card, top+10, sum.Message(), core.ColorGray)

	g.playAgainButton.Render(dst)
	g.reviewButton.Render(dst)
	g.exitButton.Render(dst)

	dst.DrawTextCenteredColored(g.screenH-1, "r play again  •  v review  •  q quit", core.ColorDarkGray)
}

// drawBar draws a horizontal gauge filled to frac.
func (g *Game) drawBar(dst *core.Screen, x, y, w int, frac float64, color core.Color) {
	filled := int(math.Round(core.ClampF(frac, 0, 1) * float64(w)))
	dst.DrawHLine(x, y, filled, '█', color)
	dst.DrawHLine(x+filled, y, w-filled, '░', core.ColorDarkGray)
}

// pulseColor alternates between two colors on the pulse phase.
func (g *Game) pulseColor(base, bright core.Color) core.Color {
	if math.Sin(g.pulse*2) > 0.5 {
		return bright
	}
	return base
}

// timerColor is green above ten seconds, orange above five, red otherwise.
func timerColor(remaining time.Duration) core.Color {
	switch {
	case remaining > timerSafe:
		return core.ColorGreen
	case remaining > timerWarn:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// ratingColor picks the results accent color.
func ratingColor(r quiz.Rating) core.Color {
	switch r {
	case quiz.RatingPerfect:
		return core.ColorGold
	case quiz.RatingExcellent:
		return core.ColorGreen
	case quiz.RatingGood:
		return core.ColorBlue
	case quiz.RatingNotBad:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}
