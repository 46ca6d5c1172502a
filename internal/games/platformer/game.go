// Package platformer implements the egg-launching side scroller and its
// physics sandbox. The player drags a launch line off the egg to fling it
// across noise-generated platforms without falling into the water.
package platformer

import (
	"github.com/vovakirdan/eggscroll/internal/config"
	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/registry"
)

// Registered mode identifiers.
const (
	EndlessID = "eggscroll"
	SandboxID = "eggscroll_sandbox"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's difficulty section.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a World to the platform: it maps screen cells to world units
// and turns input actions into world operations.
type Game struct {
	mode    Mode
	world   *World
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	paused  bool
	err     error // World construction failure, shown instead of the world

	// Screen size of the last frame; pointer cells are mapped against it.
	cols, rows int
}

// NewEndless creates the scrolling terrain mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewSandbox creates the fixed physics test bench.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return SandboxID
	}
	return EndlessID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Egg Sandbox"
	}
	return "Egg Scroll"
}

// Description is the one-line summary shown in the menu.
func (g *Game) Description() string {
	if g.mode == ModeSandbox {
		return "Three fixed platforms, no water. Practice launches."
	}
	return "Endless noise terrain. Stay out of the water."
}

// Reset loads the config and builds a new world from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.world, g.err = NewWorld(cfg, g.mode, runtime.Seed)
	g.paused = false
}

// World returns the current world, or nil if it could not be built.
func (g *Game) World() *World {
	return g.world
}

// Err returns the world construction error, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick. A restart replaces the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.world.Restart()
		g.paused = false
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Tick()
	return core.StepResult{State: g.State()}
}

// HandlePointer feeds a mouse event in screen cells to the launch gesture.
func (g *Game) HandlePointer(ev core.PointerEvent) {
	if g.world == nil || g.paused {
		return
	}
	x, y := g.toWorld(ev.X, ev.Y)
	switch ev.Kind {
	case core.PointerPress:
		g.world.Press(x, y)
	case core.PointerDrag:
		g.world.Drag(x, y)
	case core.PointerRelease:
		g.world.Release(x, y)
	}
}

// toWorld maps the center of a screen cell to viewport coordinates.
func (g *Game) toWorld(cx, cy int) (x, y float64) {
	cols, rows := g.cols, g.rows
	if cols == 0 || rows == 0 {
		cols, rows = g.runtime.ScreenW, g.runtime.ScreenH
	}
	v := newView(g.world, cols, rows)
	return v.worldX(cx), v.worldY(cy)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
	registry.Register(SandboxID, func() registry.Game {
		return NewSandbox()
	})
}
