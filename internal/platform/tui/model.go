package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathify/internal/core"
	"github.com/vovakirdan/mathify/internal/games/mathify"
)

// Model is the Bubble Tea model that drives the quiz.
type Model struct {
	game       *mathify.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	clicks     *core.ClickTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	review     *ReviewModel
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game *mathify.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		clicks:     &core.ClickTracker{},
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.review != nil {
		return m.updateReview(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse tracks the pointer and feeds button edges to the click tracker.
// Presses count for the left button only; any release ends a press, since
// X10 terminals report releases without a button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Pointer.X = msg.X
	m.inputFrame.Pointer.Y = msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.clicks.Press()
		}
	case tea.MouseActionRelease:
		m.clicks.Release()
	}
	return m, nil
}

// handleResize resizes the screen buffer. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.resize(msg.Width, msg.Height)
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Time = now
	m.inputFrame.Pointer.Clicked = m.clicks.Poll()

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if prev.Screen != m.gameState.Screen {
		m.logTransition(prev)
	}

	if m.gameState.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	if result.Review {
		review := NewReviewModel(m.game.History(), m.game.Summary(), m.config.ScreenW, m.config.ScreenH)
		m.review = &review
		m.logger.Debug("review opened", "session", m.game.Session().ID())
	}

	return m, tickCmd(m.config.TickRate)
}

// logTransition records screen changes; finished runs are logged at info level.
func (m Model) logTransition(prev core.GameState) {
	s := m.game.Session()
	m.logger.Debug("screen changed",
		"from", prev.Screen,
		"to", m.gameState.Screen,
		"session", s.ID(),
		"question", s.Index(),
		"score", m.gameState.Score,
	)

	if m.gameState.GameOver {
		sum := m.game.Summary()
		m.logger.Info("quiz finished",
			"session", s.ID(),
			"difficulty", sum.Difficulty,
			"score", sum.Score,
			"correct", sum.Correct,
			"percentage", fmt.Sprintf("%.1f", sum.Percentage),
		)
	}
}

// updateReview forwards messages to the open review. Ticks keep the loop alive
// but do not step the game, which is parked on the results screen.
func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	review, cmd := m.review.Update(msg)
	switch {
	case review.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case review.Closed():
		m.review = nil
		m.inputFrame.Clear()
		return m, cmd
	}

	m.review = &review
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".mathify", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.review != nil {
		return m.review.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the driven game.
func (m Model) Game() *mathify.Game {
	return m.game
}

// Reviewing reports whether the answer review is open.
func (m Model) Reviewing() bool {
	return m.review != nil
}

// Run starts the Bubble Tea program with the given game.
func Run(game *mathify.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
