// Package config provides YAML-based configuration loading and difficulty
// management for the platformer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/eggscroll/internal/noise"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// PlatformerConfig contains all configuration for the platformer modes.
type PlatformerConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Launch     LaunchConfig     `yaml:"launch"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sandbox    SandboxConfig    `yaml:"sandbox"`
}

// ViewportConfig is the visible world area in world units. It is scaled to
// whatever terminal size is available.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player box and its physics constants.
type PlayerConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	Size             float64 `yaml:"size"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Elasticity       float64 `yaml:"elasticity"`
	Friction         float64 `yaml:"friction"`
}

// TerrainConfig defines the noise field and the platform feed.
type TerrainConfig struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Step          float64 `yaml:"step"`
	BlockSize     float64 `yaml:"block_size"`
	BlockDistance float64 `yaml:"block_distance"`
	MaxPlatforms  int     `yaml:"max_platforms"`
	RowPeriod     int     `yaml:"row_period"` // Ticks between noise row rotations
	Backend       string  `yaml:"backend"`    // "lattice", "perlin" or "simplex"
}

// LaunchConfig defines the divisors turning a drag into a velocity change.
type LaunchConfig struct {
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

// SandboxConfig defines the fixed physics test bench.
type SandboxConfig struct {
	Viewport  ViewportConfig `yaml:"viewport"`
	StartX    float64        `yaml:"start_x"`
	StartY    float64        `yaml:"start_y"`
	BlockSize float64        `yaml:"block_size"`
	Platforms []Point        `yaml:"platforms"`
}

// Point is a bottom-left corner in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpacingIncrease float64 `yaml:"spacing_increase"` // Extra block distance at max difficulty
}

// Validate reports the first field that cannot drive a world.
func (c PlatformerConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Viewport.Width > 0, "viewport.width"},
		{c.Viewport.Height > 0, "viewport.height"},
		{c.Player.Size > 0, "player.size"},
		{c.Player.TerminalVelocity >= 0, "player.terminal_velocity"},
		{c.Terrain.Rows >= 2, "terrain.rows"},
		{c.Terrain.Cols >= 2, "terrain.cols"},
		{c.Terrain.Step > 0, "terrain.step"},
		{c.Terrain.BlockSize > 0, "terrain.block_size"},
		{c.Terrain.BlockDistance > 0, "terrain.block_distance"},
		{c.Terrain.MaxPlatforms > 0, "terrain.max_platforms"},
		{c.Terrain.RowPeriod > 0, "terrain.row_period"},
		{c.Launch.ScaleX > 0, "launch.scale_x"},
		{c.Launch.ScaleY > 0, "launch.scale_y"},
		{c.Sandbox.Viewport.Width > 0, "sandbox.viewport.width"},
		{c.Sandbox.Viewport.Height > 0, "sandbox.viewport.height"},
		{c.Sandbox.BlockSize > 0, "sandbox.block_size"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}

	// The field must hold at least one sample on each axis.
	if noise.Count(float64(c.Terrain.Rows-1), c.Terrain.Step) < 1 ||
		noise.Count(float64(c.Terrain.Cols-1), c.Terrain.Step) < 1 {
		return fmt.Errorf("%w: terrain.step %v too large for %dx%d", ErrInvalid, c.Terrain.Step, c.Terrain.Rows, c.Terrain.Cols)
	}

	if _, err := noise.ParseBackend(c.Terrain.Backend); err != nil {
		return fmt.Errorf("%w: terrain.backend: %v", ErrInvalid, err)
	}
	return nil
}
