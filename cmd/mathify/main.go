// mathify is a timed arithmetic quiz for the terminal.
//
// Usage:
//
//	mathify play              - Play the quiz
//	mathify serve             - Start SSH server for remote play
//	mathify sample            - Print generated questions with answers
//	mathify difficulties      - List difficulty levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for a reproducible question sequence
//	--config <path>      - Use a specific config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file during play
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathify/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathify",
	Short: "Mathify - Test your math skills in the terminal",
	Long: `Mathify is a timed arithmetic quiz. Pick a difficulty, answer ten
questions against a fifteen-second clock and earn a time bonus for
quick correct answers.

Available commands:
  play          - Play the quiz
  serve         - Start SSH server for remote play
  sample        - Print generated questions with answers
  difficulties  - List difficulty levels

Examples:
  mathify play
  mathify play --difficulty hard
  mathify serve --ssh :2222
  mathify sample --difficulty medium -n 5 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play discards logs otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// loadConfig resolves the config file and applies command-line overrides.
func loadConfig(difficulty string) (config.Config, string, error) {
	cfg, source, skipped, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	for _, w := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}
	if err := cfg.Apply(config.Overrides{Difficulty: difficulty, FPS: flagFPS}); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// newLogger builds the process logger. An empty path with a nil fallback
// discards output. The returned close function is never nil.
func newLogger(path string, fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeLog := func() error { return nil }
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeLog = f, f.Close
	case fallback != nil:
		w = fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeLog, nil
}
