// Package config provides YAML-based configuration loading for the engine
// loop and the scene tuning knobs, plus the named speed presets.
package config

import (
	"time"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
)

// Config is the whole coretilus configuration file.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	UI     UIConfig     `yaml:"ui"`
	Scenes ScenesConfig `yaml:"scenes"`
}

// UIConfig styles the Bubble Tea backend.
type UIConfig struct {
	Color string `yaml:"color"` // ANSI or hex foreground, empty = terminal default
}

// EngineConfig defines the loop settings.
type EngineConfig struct {
	TickMs          int  `yaml:"tick_ms"`
	TTL             int  `yaml:"ttl"` // 0 = run until the scene ends
	FallbackWidth   int  `yaml:"fallback_width"`
	FallbackHeight  int  `yaml:"fallback_height"`
	StopOnInterrupt bool `yaml:"stop_on_interrupt"`
}

// ScenesConfig holds per-scene tuning.
type ScenesConfig struct {
	Sl  SlConfig  `yaml:"sl"`
	Mr  MrConfig  `yaml:"mr"`
	Gb  GbConfig  `yaml:"gb"`
	Pc  PcConfig  `yaml:"pc"`
	Dog DogConfig `yaml:"dog"`
	Gti GtiConfig `yaml:"gti"`
}

// SlConfig tunes the train.
type SlConfig struct {
	Speed int `yaml:"speed"`
}

// MrConfig tunes the rocket landing.
type MrConfig struct {
	Speed        int `yaml:"speed"`
	SpaceportTTL int `yaml:"spaceport_ttl"`
}

// GbConfig tunes the falling blocks.
type GbConfig struct {
	Speed  int `yaml:"speed"`
	Shapes int `yaml:"shapes"`
}

// PcConfig tunes the data packets.
type PcConfig struct {
	Speed int `yaml:"speed"`
}

// DogConfig tunes the dog and its ball.
type DogConfig struct {
	Speed      int `yaml:"speed"`
	BallSpeed  int `yaml:"ball_speed"`
	BallRadius int `yaml:"ball_radius"`
}

// GtiConfig tunes the car.
type GtiConfig struct {
	Speed     int `yaml:"speed"`
	PullSpeed int `yaml:"pull_speed"`
	PushSpeed int `yaml:"push_speed"`
}

// TickDuration returns the tick budget as a duration.
func (c EngineConfig) TickDuration() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// EngineOptions converts the engine section into loop settings.
func (c Config) EngineOptions() engine.Config {
	cfg := engine.DefaultConfig()
	if c.Engine.TickMs > 0 {
		cfg.TickDuration = c.Engine.TickDuration()
	}
	if c.Engine.TTL > 0 {
		cfg.TTL = c.Engine.TTL
	}
	if c.Engine.FallbackWidth > 0 && c.Engine.FallbackHeight > 0 {
		cfg.FallbackSize = core.NewSize(c.Engine.FallbackWidth, c.Engine.FallbackHeight)
	}
	cfg.StopOnInterrupt = c.Engine.StopOnInterrupt
	return cfg
}
