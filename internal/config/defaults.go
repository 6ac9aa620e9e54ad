package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default block game configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Timing: TimingConfig{
			NormalInterval: 0.2,
			SpeedUpDivider: 4,
		},
		Controls: ControlsConfig{
			SoftDropHold: 0.6,
		},
		Render: RenderConfig{
			TileWidth:    2,
			FilledGlyph:  "█",
			EmptyGlyph:   "·",
			QueuePreview: 5,
		},
		Window: WindowConfig{
			Width:  600,
			Height: 760,
			Margin: 20,
			TPS:    30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
