package config

import "fmt"

// SpeedPreset represents a named fall speed.
type SpeedPreset string

const (
	SpeedRelaxed SpeedPreset = "relaxed"
	SpeedNormal  SpeedPreset = "normal"
	SpeedBrisk   SpeedPreset = "brisk"
	SpeedFixed   SpeedPreset = "fixed" // normal speed, acceleration disabled
)

// SpeedPresets lists the presets in flag-help order.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedRelaxed, SpeedNormal, SpeedBrisk, SpeedFixed}
}

// ParseSpeedPreset validates a preset name. Empty means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	if s == "" {
		return SpeedNormal, nil
	}
	for _, p := range SpeedPresets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown speed preset %q (want relaxed, normal, brisk or fixed)", s)
}

// intervalScale returns the factor applied to the normal interval.
func intervalScale(preset SpeedPreset) float64 {
	switch preset {
	case SpeedRelaxed:
		return 1.5
	case SpeedBrisk:
		return 0.6
	default:
		return 1.0
	}
}

// ApplySpeedPreset modifies the config based on a speed preset. The speed
// stays constant for the whole session.
func ApplySpeedPreset(cfg *BlocksConfig, preset SpeedPreset) {
	cfg.Timing.NormalInterval *= intervalScale(preset)
	if preset == SpeedFixed {
		cfg.Timing.SpeedUpDivider = 1
	}
}
