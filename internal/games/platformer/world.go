package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/eggscroll/internal/config"
	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/launch"
	"github.com/vovakirdan/eggscroll/internal/noise"
	"github.com/vovakirdan/eggscroll/internal/physics"
	"github.com/vovakirdan/eggscroll/internal/terrain"
)

// Mode selects the world rules.
type Mode int

const (
	ModeEndless Mode = iota // Scrolling noise terrain, death below the water line
	ModeSandbox             // Fixed test platforms, no scrolling, no death
)

// scoreOffset makes the start position score zero.
const scoreOffset = 460

// Score maps the player's horizontal position to points.
// Positions at or left of the origin score nothing.
func Score(x float64) int {
	if x <= 0 {
		return 0
	}
	return int(math.Floor(x*math.Log(x))) - scoreOffset
}

// World holds all state of one run. Lengths are world units; y grows down.
type World struct {
	mode          Mode
	viewW, viewH  float64
	start         core.Vec2
	blockSize     float64
	blockDistance float64
	rowPeriod     int
	fixed         []config.Point

	player     *physics.Body
	platforms  *physics.PlatformSet
	sampler    *terrain.Sampler
	cursor     *terrain.Cursor
	gesture    *launch.Gesture
	difficulty *config.DifficultyManager

	scroll   float64
	farthest float64
	ticks    int
	score    int
	gameOver bool
}

// NewWorld builds a world from cfg. The endless mode generates its noise
// field from seed; the sandbox ignores it.
func NewWorld(cfg config.PlatformerConfig, mode Mode, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}

	w := &World{
		mode:          mode,
		blockDistance: cfg.Terrain.BlockDistance,
		rowPeriod:     cfg.Terrain.RowPeriod,
		gesture:       launch.NewGesture(cfg.Launch.ScaleX, cfg.Launch.ScaleY),
		difficulty:    config.NewDifficultyManager(cfg.Difficulty),
	}

	switch mode {
	case ModeEndless:
		w.viewW, w.viewH = cfg.Viewport.Width, cfg.Viewport.Height
		w.start = core.V(cfg.Player.StartX, cfg.Player.StartY)
		w.blockSize = cfg.Terrain.BlockSize

		backend, err := noise.ParseBackend(cfg.Terrain.Backend)
		if err != nil {
			return nil, fmt.Errorf("platformer: %w", err)
		}
		field, err := terrain.GenerateField(backend, cfg.Terrain.Rows, cfg.Terrain.Cols, cfg.Terrain.Step, seed)
		if err != nil {
			return nil, fmt.Errorf("platformer: %w", err)
		}
		w.sampler = terrain.NewSampler(field, w.viewW, w.viewH, w.blockSize)
		w.cursor = terrain.NewCursor(field.Rows(), field.Cols())
		w.platforms = physics.NewPlatformSet(cfg.Terrain.MaxPlatforms)

	case ModeSandbox:
		sb := cfg.Sandbox
		w.viewW, w.viewH = sb.Viewport.Width, sb.Viewport.Height
		w.start = core.V(sb.StartX, sb.StartY)
		w.blockSize = sb.BlockSize
		w.fixed = sb.Platforms
		w.platforms = physics.NewPlatformSet(len(sb.Platforms))

	default:
		return nil, fmt.Errorf("platformer: unknown mode %d", mode)
	}

	player, err := physics.NewBody(w.start.X, w.start.Y, cfg.Player.Size, physics.Params{
		Gravity:          cfg.Player.Gravity,
		TerminalVelocity: cfg.Player.TerminalVelocity,
		Elasticity:       cfg.Player.Elasticity,
		Friction:         cfg.Player.Friction,
	})
	if err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}
	w.player = player

	w.seedPlatforms()
	w.score = w.currentScore()
	return w, nil
}

// Mode returns the world rules.
func (w *World) Mode() Mode {
	return w.mode
}

// Viewport returns the visible world size.
func (w *World) Viewport() (width, height float64) {
	return w.viewW, w.viewH
}

// Player returns the player body. Callers must not move it.
func (w *World) Player() *physics.Body {
	return w.player
}

// Platforms returns the live platforms, oldest first.
func (w *World) Platforms() []physics.Body {
	return w.platforms.All()
}

// Sampler returns the terrain sampler, or nil in the sandbox.
func (w *World) Sampler() *terrain.Sampler {
	return w.sampler
}

// Row returns the noise row used for the water band and new platforms.
func (w *World) Row() int {
	if w.cursor == nil {
		return 0
	}
	return w.cursor.Row
}

// Scroll returns the horizontal view offset.
func (w *World) Scroll() float64 {
	return w.scroll
}

// Farthest returns the x of the newest fed platform (0 before the first feed).
func (w *World) Farthest() float64 {
	return w.farthest
}

// Ticks returns the number of simulated ticks since the world was built.
func (w *World) Ticks() int {
	return w.ticks
}

// Score returns the score of the current position.
func (w *World) Score() int {
	return w.score
}

// GameOver reports whether the player has fallen into the water.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Launch returns the in-progress launch line in viewport coordinates.
func (w *World) Launch() (from, to core.Vec2, ok bool) {
	return w.gesture.Segment()
}

// BlockDistance returns the current spacing between fed platforms.
func (w *World) BlockDistance() float64 {
	return w.difficulty.Widen(w.blockDistance, w.score, w.ticks)
}

// Tick advances the world by one step. A finished world does not move.
func (w *World) Tick() {
	if w.gameOver {
		return
	}
	w.ticks++
	w.player.Step(w.platforms.All())

	if w.mode != ModeEndless {
		return
	}

	w.sideScroll()
	w.feed()
	if w.ticks%w.rowPeriod == 0 {
		w.cursor.AdvanceRow()
	}
	w.score = w.currentScore()
	w.checkDeath()
}

// Restart puts the player back at the start. The endless world also drops
// its platforms and scroll; the noise field and cursors are kept.
func (w *World) Restart() {
	w.player.Reset(w.start.X, w.start.Y)
	w.gesture.Cancel()
	if w.mode == ModeEndless {
		w.scroll = 0
		w.farthest = 0
		w.gameOver = false
		w.platforms.Clear()
		w.seedPlatforms()
	}
	w.score = w.currentScore()
}

// Press starts a launch at viewport coordinates (x, y).
func (w *World) Press(x, y float64) {
	if w.gameOver {
		return
	}
	w.gesture.Press(x, y, w.scroll, w.player)
}

// Drag updates the launch line.
func (w *World) Drag(x, y float64) {
	if w.gameOver {
		return
	}
	w.gesture.Drag(x, y)
}

// Release fires the launch and returns the velocity change applied.
func (w *World) Release(x, y float64) (core.Vec2, bool) {
	if w.gameOver {
		w.gesture.Cancel()
		return core.Vec2{}, false
	}
	return w.gesture.Release(x, y, w.player)
}

func (w *World) currentScore() int {
	if w.mode != ModeEndless {
		return 0
	}
	return Score(w.player.Pos.X)
}

// seedPlatforms places the platforms a fresh run starts with.
func (w *World) seedPlatforms() {
	if w.mode == ModeSandbox {
		for _, p := range w.fixed {
			w.addPlatform(p.X, p.Y)
		}
		return
	}
	// The first platform sits under the start and does not move the feed.
	w.addPlatform(w.start.X, w.viewH/2+w.blockSize)
}

// feed appends one platform ahead of the player when it gets close to the
// newest one. Heights come from the noise cell under the cursor.
func (w *World) feed() {
	dist := w.BlockDistance()
	if w.player.Pos.X <= w.farthest-dist {
		return
	}
	x := w.farthest + dist
	w.addPlatform(x, w.sampler.NextHeight(w.cursor))
	w.farthest = x
}

// sideScroll keeps the player inside the middle third of the view.
func (w *World) sideScroll() {
	x := w.player.Pos.X
	third := w.viewW / 3
	if x < w.scroll+third {
		w.scroll = x - third
	}
	if x > w.scroll+w.viewW-third {
		w.scroll = x - w.viewW + third
	}
}

func (w *World) checkDeath() {
	if w.player.Pos.Y >= w.viewH-w.blockSize {
		w.gameOver = true
	}
}

func (w *World) addPlatform(x, y float64) {
	p, err := physics.NewPlatform(x, y, w.blockSize)
	if err != nil {
		return // blockSize is validated by NewWorld
	}
	w.platforms.Append(p)
}
