package config

import (
	_ "embed"
)

//go:embed defaults/eggscroll.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Viewport: ViewportConfig{
			Width:  1000,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:           100,
			StartY:           200,
			Size:             50,
			Gravity:          0.1,
			TerminalVelocity: 20,
			Elasticity:       0.2,
			Friction:         0.1,
		},
		Terrain: TerrainConfig{
			Rows:          10,
			Cols:          10,
			Step:          0.1,
			BlockSize:     100,
			BlockDistance: 400,
			MaxPlatforms:  10,
			RowPeriod:     50,
			Backend:       "lattice",
		},
		Launch: LaunchConfig{
			ScaleX: 50,
			ScaleY: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpacingIncrease: 200,
			},
		},
		Sandbox: SandboxConfig{
			Viewport: ViewportConfig{
				Width:  600,
				Height: 400,
			},
			StartX:    50,
			StartY:    300,
			BlockSize: 50,
			Platforms: []Point{
				{X: 50, Y: 400},
				{X: 150, Y: 300},
				{X: 400, Y: 350},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
