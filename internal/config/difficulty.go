package config

import "github.com/vovakirdan/eggscroll/internal/core"

// DifficultyPreset is a named starting point for the difficulty section.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Progression off, config level kept
)

// presetLevels holds the initial level of each preset.
var presetLevels = map[DifficultyPreset]float64{
	DifficultyEasy:   0.0,
	DifficultyNormal: 0.3,
	DifficultyHard:   0.7,
	DifficultyFixed:  0.0,
}

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	if _, ok := presetLevels[DifficultyPreset(s)]; ok {
		return DifficultyPreset(s)
	}
	return ""
}

// Progression types for difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager widens the gap between platforms as a run goes on.
// The level climbs from the initial level to 1 at progression.max_at.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the gap grows during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// progress returns how far along the progression a run is, in [0, 1].
// Unknown progression types never advance.
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	var at float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		at = float64(score)
	case ProgressionTime:
		at = float64(ticks)
	default:
		return 0
	}
	return core.ClampF(at/maxAt, 0, 1)
}

// Level returns the difficulty level in [0, 1] for a run at score and ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(score, ticks)*(1-d.initialLevel)
}

// Widen returns the block distance for a run at score and ticks. Without
// progression the base distance is returned unchanged, whatever the level.
func (d *DifficultyManager) Widen(base float64, score, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base + d.Level(score, ticks)*d.cfg.Scaling.SpacingIncrease
}
