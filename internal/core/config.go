package core

import "time"

// RuntimeConfig contains configuration passed to a game at initialization.
// Hosts use this to size the screen and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the wall time covered by one host frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the host-visible status of a running game.
type GameState struct {
	Paused       bool // Whether the simulation is paused
	Accelerating bool // Whether the soft-drop interval is active
	Rounds       int  // Rounds ended by top-out
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State GameState
	Ticks int // Simulation ticks executed during this frame
}
