package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathify/internal/core"
	"github.com/vovakirdan/mathify/internal/games/mathify"
	"github.com/vovakirdan/mathify/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quiz",
	Long: `Start the quiz in this terminal.

Controls:
  1/2/3, e/m/h  - Choose Easy, Medium or Hard
  0-9, -        - Type an answer
  Backspace     - Delete last character
  Enter         - Submit answer / play again
  V             - Review answers (results screen)
  R             - Play again (results screen)
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

The mouse works too: click the buttons.

Difficulty options:
  easy    - Numbers 1-20, addition and subtraction
  medium  - Numbers 1-50, adds multiplication
  hard    - Numbers 1-1000, adds division

Examples:
  mathify play
  mathify play --difficulty medium
  mathify play --seed 42 --log-file mathify.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the welcome screen: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	logger, closeLog, err := newLogger(flagLogFile, nil, "mathify")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source, "difficulty", cfg.Session.Difficulty, "fps", cfg.Runtime.FPS)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.FPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(mathify.New(cfg), rc, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running quiz: %v\n", runErr)
		os.Exit(1)
	}
}
