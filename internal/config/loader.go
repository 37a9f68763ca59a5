package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the mathify configuration and returns it together with its source.
// Search order: customPath -> ~/.mathify/config.yaml -> ./configs/mathify.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
// Files in the search path that exist but fail to parse or validate are skipped;
// their errors come back in skipped so the caller can warn about them.
func Load(customPath string) (cfg Config, source string, skipped []error, err error) {
	// Try custom path first; a broken explicit path is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", nil, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "mathify.yaml")} {
		if path == "" {
			continue
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}
		parsed, parseErr := parse(data)
		if parseErr != nil {
			skipped = append(skipped, fmt.Errorf("config: skipped %s: %w", path, parseErr))
			continue
		}
		return parsed, path, skipped, nil
	}

	// Use embedded default YAML
	parsed, parseErr := parse(defaultYAML)
	if parseErr != nil {
		skipped = append(skipped, fmt.Errorf("config: skipped embedded default: %w", parseErr))
		return Default(), SourceBuiltin, skipped, nil
	}
	return parsed, SourceEmbedded, skipped, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathify", "config.yaml")
}
