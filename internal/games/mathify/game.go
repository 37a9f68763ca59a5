// Package mathify adapts the quiz session to the cell screen: it turns input
// frames into session calls, owns the answer field and the animations, and
// draws the four quiz screens.
package mathify

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mathify/internal/config"
	"github.com/vovakirdan/mathify/internal/core"
	"github.com/vovakirdan/mathify/internal/quiz"
)

// Minimum terminal size for the question layout
const (
	MinWidth  = 60
	MinHeight = 22
)

// Animation rates
const (
	progressEase = 0.1
	pulseStep    = 0.05
)

// Game is the Mathify quiz as a frame-driven game.
type Game struct {
	cfg     config.Config
	rng     *rand.Rand // Questions only, so a seed fixes the question sequence
	fxRng   *rand.Rand
	session *quiz.Session
	tick    uint64
	now     time.Time

	// Preselected difficulty, consumed on the first Reset
	autoStart    quiz.Difficulty
	autoStartSet bool

	answer   AnswerInput
	burst    Burst
	progress float64 // Eased progress bar fill in [0, 1]
	pulse    float64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Buttons, laid out on Reset and Resize
	difficultyButtons [3]*Button
	submitButton      *Button
	playAgainButton   *Button
	reviewButton      *Button
	exitButton        *Button

	exit bool
}

// New creates a quiz game with the given configuration. A difficulty set in
// cfg.Session.Difficulty skips the welcome screen on the first run.
func New(cfg config.Config) *Game {
	g := &Game{cfg: cfg}
	g.autoStart, g.autoStartSet = cfg.StartDifficulty()

	g.difficultyButtons = [3]*Button{
		NewButton(quiz.DifficultyEasy.Title(), core.ColorGreen, core.ColorBrightGreen),
		NewButton(quiz.DifficultyMedium.Title(), core.ColorOrange, core.ColorBrightOrange),
		NewButton(quiz.DifficultyHard.Title(), core.ColorRed, core.ColorBrightRed),
	}
	g.submitButton = NewButton("Submit", core.ColorBlue, core.ColorBrightBlue)
	g.playAgainButton = NewButton("Play Again", core.ColorBlue, core.ColorBrightBlue)
	g.reviewButton = NewButton("Review", core.ColorGray, core.ColorBrightWhite)
	g.exitButton = NewButton("Exit", core.ColorRed, core.ColorBrightRed)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mathify"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mathify"
}

// Reset starts over on the welcome screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.fxRng = rand.New(rand.NewSource(rc.Seed + 1))
	g.session = quiz.NewSession(g.rng, g.cfg.QuizOptions())
	g.tick = 0
	g.now = time.Time{}
	g.answer.Clear()
	g.burst.Reset()
	g.progress = 0
	g.pulse = 0
	g.exit = false
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
	g.layout()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pulse += pulseStep
	g.now = in.Time
	if g.now.IsZero() {
		g.now = time.Now()
	}

	if g.autoStartSet && !g.tooSmall {
		g.autoStartSet = false
		g.start(g.autoStart)
	}

	g.updateButtons(in.Pointer)

	var result core.StepResult
	if !g.tooSmall {
		switch g.session.State() {
		case quiz.StateWelcome:
			g.stepWelcome(in)
		case quiz.StateQuestion:
			g.stepQuestion(in)
		case quiz.StateFeedback:
			g.stepFeedback()
		case quiz.StateResults:
			result.Review = g.stepResults(in)
		}
	}

	g.burst.Update(g.cfg.Effects.Gravity)
	g.progress = core.Approach(g.progress, g.progressTarget(), progressEase)

	result.State = g.State()
	return result
}

func (g *Game) stepWelcome(in core.InputFrame) {
	for _, r := range in.Runes {
		if d, ok := difficultyForKey(r); ok {
			g.start(d)
			return
		}
	}
	for i, b := range g.difficultyButtons {
		if b.Clicked(in.Pointer) {
			g.start(quiz.Difficulties[i])
			return
		}
	}
}

func (g *Game) stepQuestion(in core.InputFrame) {
	if g.session.Tick(g.now) == quiz.EventTimeUp {
		g.answer.Clear()
		return
	}

	for _, r := range in.Runes {
		g.answer.Type(r)
	}
	if in.Has(core.ActionBackspace) {
		g.answer.Backspace()
	}

	if !in.Has(core.ActionConfirm) && !g.submitButton.Clicked(in.Pointer) {
		return
	}
	if g.answer.Empty() {
		return
	}

	out, ok := g.session.Submit(g.answer.Value(), g.now)
	if g.session.State() != quiz.StateQuestion {
		g.answer.Clear()
	}
	if ok && out.Correct {
		g.celebrate()
	}
}

func (g *Game) stepFeedback() {
	g.session.Tick(g.now)
}

// stepResults handles the results buttons and reports whether the review was requested.
func (g *Game) stepResults(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm), g.playAgainButton.Clicked(in.Pointer):
		g.session.Replay()
		g.answer.Clear()
		g.burst.Reset()
		g.progress = 0
	case in.Has(core.ActionReview), g.reviewButton.Clicked(in.Pointer):
		return true
	case g.exitButton.Clicked(in.Pointer):
		g.exit = true
	}
	return false
}

func (g *Game) start(d quiz.Difficulty) {
	if g.session.Start(d, g.now) {
		g.answer.Clear()
		g.progress = 0
	}
}

func (g *Game) celebrate() {
	cx := float64(g.screenW) / 2
	cy := float64(g.screenH) / 2
	g.burst.Spawn(g.fxRng, g.cfg.Effects.Particles, cx, cy, g.cfg.Effects.ParticleLifetime)
}

// progressTarget is the share of questions already shown, in [0, 1].
func (g *Game) progressTarget() float64 {
	if g.session.State() == quiz.StateWelcome {
		return 0
	}
	return float64(g.session.Index()) / float64(g.session.Total())
}

func (g *Game) updateButtons(p core.Pointer) {
	for _, b := range g.visibleButtons() {
		b.Update(p.X, p.Y)
	}
}

// visibleButtons returns the buttons on the current screen.
func (g *Game) visibleButtons() []*Button {
	if g.session == nil {
		return nil
	}
	switch g.session.State() {
	case quiz.StateWelcome:
		return g.difficultyButtons[:]
	case quiz.StateQuestion:
		return []*Button{g.submitButton}
	case quiz.StateResults:
		return []*Button{g.playAgainButton, g.reviewButton, g.exitButton}
	default:
		return nil
	}
}

// difficultyForKey maps the welcome-screen shortcuts to difficulties.
func difficultyForKey(r rune) (quiz.Difficulty, bool) {
	switch r {
	case '1', 'e', 'E':
		return quiz.DifficultyEasy, true
	case '2', 'm', 'M':
		return quiz.DifficultyMedium, true
	case '3', 'h', 'H':
		return quiz.DifficultyHard, true
	default:
		return "", false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Exit: g.exit}
	}
	return core.GameState{
		Screen:   g.session.State().String(),
		Score:    g.session.Score(),
		GameOver: g.session.State() == quiz.StateResults,
		Exit:     g.exit,
	}
}

// Session exposes the underlying quiz session.
func (g *Game) Session() *quiz.Session {
	return g.session
}

// Summary returns the figures of the current run.
func (g *Game) Summary() quiz.Summary {
	return g.session.Summary()
}

// History returns the finished questions of the current run.
func (g *Game) History() []quiz.Record {
	return g.session.History()
}

// Answer returns the text typed into the answer field.
func (g *Game) Answer() string {
	return g.answer.Value()
}

// Particles returns the number of live celebration particles.
func (g *Game) Particles() int {
	return g.burst.Len()
}
