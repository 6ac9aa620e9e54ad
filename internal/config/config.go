// Package config provides YAML-based configuration loading and speed
// presets for the block game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// BlocksConfig contains all configuration for the block game.
type BlocksConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
	Window   WindowConfig   `yaml:"window"`
}

// TimingConfig defines the fall speed.
type TimingConfig struct {
	NormalInterval float64 `yaml:"normal_interval"`  // Seconds per fall tick at normal speed
	SpeedUpDivider int     `yaml:"speed_up_divider"` // Interval divisor while accelerating
}

// ControlsConfig defines input handling for terminal hosts.
type ControlsConfig struct {
	// SoftDropHold is how long, in seconds, acceleration lasts after the
	// last down-key event. Terminals report no key releases.
	SoftDropHold float64 `yaml:"soft_drop_hold"`
}

// RenderConfig defines terminal drawing.
type RenderConfig struct {
	TileWidth    int    `yaml:"tile_width"`    // Columns per field cell
	FilledGlyph  string `yaml:"filled_glyph"`  // Single character for occupied cells
	EmptyGlyph   string `yaml:"empty_glyph"`   // Single character for empty cells
	QueuePreview int    `yaml:"queue_preview"` // Upcoming pieces shown
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
	TPS    int `yaml:"tps"` // Window updates per second
}

// Interval returns the normal fall interval.
func (t TimingConfig) Interval() time.Duration {
	return seconds(t.NormalInterval)
}

// Hold returns the soft-drop hold window.
func (c ControlsConfig) Hold() time.Duration {
	return seconds(c.SoftDropHold)
}

// FilledRune returns the occupied-cell glyph.
func (r RenderConfig) FilledRune() rune {
	return firstRune(r.FilledGlyph)
}

// EmptyRune returns the empty-cell glyph.
func (r RenderConfig) EmptyRune() rune {
	return firstRune(r.EmptyGlyph)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Validate reports every out-of-range setting.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Timing.NormalInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.normal_interval must be positive, got %v", c.Timing.NormalInterval))
	}
	if c.Timing.SpeedUpDivider < 1 {
		errs = append(errs, fmt.Errorf("timing.speed_up_divider must be at least 1, got %d", c.Timing.SpeedUpDivider))
	}
	if c.Controls.SoftDropHold <= 0 {
		errs = append(errs, fmt.Errorf("controls.soft_drop_hold must be positive, got %v", c.Controls.SoftDropHold))
	}
	if c.Render.TileWidth < 1 || c.Render.TileWidth > 4 {
		errs = append(errs, fmt.Errorf("render.tile_width must be in [1, 4], got %d", c.Render.TileWidth))
	}
	if utf8.RuneCountInString(c.Render.FilledGlyph) != 1 {
		errs = append(errs, fmt.Errorf("render.filled_glyph must be one character, got %q", c.Render.FilledGlyph))
	}
	if utf8.RuneCountInString(c.Render.EmptyGlyph) != 1 {
		errs = append(errs, fmt.Errorf("render.empty_glyph must be one character, got %q", c.Render.EmptyGlyph))
	}
	if c.Render.QueuePreview < 0 || c.Render.QueuePreview > 10 {
		errs = append(errs, fmt.Errorf("render.queue_preview must be in [0, 10], got %d", c.Render.QueuePreview))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Margin < 0 {
		errs = append(errs, fmt.Errorf("window.margin must not be negative, got %d", c.Window.Margin))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
