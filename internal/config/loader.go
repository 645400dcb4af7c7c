package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file, relative to the working dir.
const LocalPath = "configs/coretilus.yaml"

// Load loads the configuration. Keys missing from a file keep their
// default values.
// Search order: customPath -> ~/.coretilus/config.yaml -> ./configs/coretilus.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Engine.TickMs < 1 {
		errs = append(errs, fmt.Errorf("engine.tick_ms must be at least 1, got %d", c.Engine.TickMs))
	}
	if c.Engine.TTL < 0 {
		errs = append(errs, fmt.Errorf("engine.ttl must not be negative, got %d", c.Engine.TTL))
	}
	speeds := []struct {
		key string
		val int
	}{
		{"scenes.sl.speed", c.Scenes.Sl.Speed},
		{"scenes.mr.speed", c.Scenes.Mr.Speed},
		{"scenes.gb.speed", c.Scenes.Gb.Speed},
		{"scenes.gb.shapes", c.Scenes.Gb.Shapes},
		{"scenes.pc.speed", c.Scenes.Pc.Speed},
		{"scenes.dog.speed", c.Scenes.Dog.Speed},
		{"scenes.dog.ball_speed", c.Scenes.Dog.BallSpeed},
		{"scenes.gti.speed", c.Scenes.Gti.Speed},
		{"scenes.gti.pull_speed", c.Scenes.Gti.PullSpeed},
		{"scenes.gti.push_speed", c.Scenes.Gti.PushSpeed},
	}
	for _, s := range speeds {
		if s.val < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", s.key, s.val))
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coretilus", filename)
}

// Dir returns ~/.coretilus, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coretilus")
}
