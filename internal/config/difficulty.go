package config

import "github.com/vovakirdan/mathify/internal/quiz"

// Overrides holds command-line values that take precedence over the file.
type Overrides struct {
	Difficulty string // Empty keeps the configured value
	FPS        int    // 0 keeps the configured value
}

// Apply layers non-empty overrides onto the configuration and revalidates it.
func (c *Config) Apply(o Overrides) error {
	if o.Difficulty != "" {
		c.Session.Difficulty = o.Difficulty
	}
	if o.FPS > 0 {
		c.Runtime.FPS = o.FPS
	}
	return c.Validate()
}

// StartDifficulty returns the preselected difficulty, if any.
// When ok is false the player picks one on the welcome screen.
func (c Config) StartDifficulty() (d quiz.Difficulty, ok bool) {
	if c.Session.Difficulty == "" {
		return "", false
	}
	d, err := quiz.ParseDifficulty(c.Session.Difficulty)
	if err != nil {
		return "", false
	}
	return d, true
}
