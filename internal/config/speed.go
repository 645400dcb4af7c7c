package config

import "fmt"

// SpeedPreset represents a named playback speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset validates a preset name. The empty string means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow, SpeedFast:
		return SpeedPreset(s), nil
	}
	return "", fmt.Errorf("unknown speed preset %q (want slow, normal or fast)", s)
}

// TickScaleForPreset returns the multiplier applied to the tick budget.
func TickScaleForPreset(preset SpeedPreset) float64 {
	switch preset {
	case SpeedSlow:
		return 2.0
	case SpeedFast:
		return 0.5
	default:
		return 1.0
	}
}

// ApplySpeedPreset scales the tick budget. It never drops below 1 ms.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	scaled := int(float64(cfg.Engine.TickMs) * TickScaleForPreset(preset))
	cfg.Engine.TickMs = max(scaled, 1)
}
