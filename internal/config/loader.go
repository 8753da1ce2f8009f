package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// fileName is the config file looked up in user and local directories.
const fileName = "starcatch.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.starcatch/configs/starcatch.yaml -> ./configs/starcatch.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may override a subset of keys.
// The result is validated before it is returned.
func Load(customPath string) (GameConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default().
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks that the configuration can start a simulation.
// An unusable arena is fatal: the game must not begin.
func Validate(cfg GameConfig) error {
	switch {
	case !positive(cfg.Arena.Width) || !positive(cfg.Arena.Height):
		return fmt.Errorf("%w: arena must be positive and finite, got %gx%g", ErrInvalidConfig, cfg.Arena.Width, cfg.Arena.Height)
	case !positive(cfg.Player.Size) || !positive(cfg.Enemies.Size) || !positive(cfg.Stars.Size):
		return fmt.Errorf("%w: entity sizes must be positive and finite", ErrInvalidConfig)
	case !nonNegative(cfg.Player.Speed) || !nonNegative(cfg.Enemies.Speed):
		return fmt.Errorf("%w: speeds must be finite and not negative", ErrInvalidConfig)
	case cfg.Enemies.Count < 0 || cfg.Stars.Count < 0:
		return fmt.Errorf("%w: entity counts must not be negative", ErrInvalidConfig)
	case !positive(cfg.Stars.SpawnInterval):
		return fmt.Errorf("%w: star spawn interval must be positive, got %g", ErrInvalidConfig, cfg.Stars.SpawnInterval)
	}
	return nil
}

// positive is false for NaN and infinities.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", "configs", filename)
}
