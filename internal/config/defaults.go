package config

import (
	_ "embed"
)

//go:embed defaults/coretilus.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			TickMs:          5,
			TTL:             0,
			FallbackWidth:   100,
			FallbackHeight:  50,
			StopOnInterrupt: true,
		},
		Scenes: ScenesConfig{
			Sl: SlConfig{Speed: 7},
			Mr: MrConfig{Speed: 20, SpaceportTTL: 300},
			Gb: GbConfig{Speed: 100, Shapes: 3},
			Pc: PcConfig{Speed: 17},
			Dog: DogConfig{
				Speed:      12,
				BallSpeed:  8,
				BallRadius: 15,
			},
			Gti: GtiConfig{
				Speed:     2,
				PullSpeed: 5,
				PushSpeed: 8,
			},
		},
	}
}
