package core

// RuntimeConfig is what the platform tells a game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation ticks per second
	Seed     int64 // Terrain seed; 0 lets the platform pick one
}

// Fallbacks for a terminal that cannot be measured and an unset tick rate.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// WithDefaults replaces non-positive sizes and tick rate with the fallbacks.
// The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the status a game reports after every tick.
type GameState struct {
	Score    int // Best score of the current run
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Restarted bool // The tick began with a restart
}
