// Package config provides YAML-based configuration loading for mathify.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mathify/internal/quiz"
)

// Config is the complete mathify configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Effects EffectsConfig `yaml:"effects"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// SessionConfig controls quiz length and timing.
type SessionConfig struct {
	Difficulty       string        `yaml:"difficulty"` // Empty = choose on the welcome screen
	TotalQuestions   int           `yaml:"total_questions"`
	TimeLimit        time.Duration `yaml:"time_limit"`
	FeedbackDuration time.Duration `yaml:"feedback_duration"`
}

// EffectsConfig controls the celebration particles.
type EffectsConfig struct {
	Particles        int     `yaml:"particles"`         // Particles per correct answer
	ParticleLifetime int     `yaml:"particle_lifetime"` // Frames
	Gravity          float64 `yaml:"gravity"`
}

// RuntimeConfig controls the frame loop.
type RuntimeConfig struct {
	FPS int `yaml:"fps"`
}

// QuizOptions converts the session settings into quiz.Options.
func (c Config) QuizOptions() quiz.Options {
	return quiz.Options{
		TotalQuestions:   c.Session.TotalQuestions,
		TimeLimit:        c.Session.TimeLimit,
		FeedbackDuration: c.Session.FeedbackDuration,
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Session.Difficulty != "" {
		if _, err := quiz.ParseDifficulty(c.Session.Difficulty); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Session.TotalQuestions <= 0 {
		errs = append(errs, fmt.Errorf("session.total_questions must be positive, got %d", c.Session.TotalQuestions))
	}
	if c.Session.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("session.time_limit must be positive, got %s", c.Session.TimeLimit))
	}
	if c.Session.FeedbackDuration <= 0 {
		errs = append(errs, fmt.Errorf("session.feedback_duration must be positive, got %s", c.Session.FeedbackDuration))
	}
	if c.Effects.Particles < 0 {
		errs = append(errs, fmt.Errorf("effects.particles must not be negative, got %d", c.Effects.Particles))
	}
	if c.Effects.ParticleLifetime <= 0 {
		errs = append(errs, fmt.Errorf("effects.particle_lifetime must be positive, got %d", c.Effects.ParticleLifetime))
	}
	if c.Runtime.FPS <= 0 {
		errs = append(errs, fmt.Errorf("runtime.fps must be positive, got %d", c.Runtime.FPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
