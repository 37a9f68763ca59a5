package config

import (
	_ "embed"

	"github.com/vovakirdan/mathify/internal/quiz"
)

//go:embed defaults/mathify.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, identical to the embedded YAML.
func Default() Config {
	return Config{
		Session: SessionConfig{
			TotalQuestions:   quiz.DefaultTotalQuestions,
			TimeLimit:        quiz.DefaultTimeLimit,
			FeedbackDuration: quiz.DefaultFeedbackDuration,
		},
		Effects: EffectsConfig{
			Particles:        30,
			ParticleLifetime: 60,
			Gravity:          0.03,
		},
		Runtime: RuntimeConfig{
			FPS: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
