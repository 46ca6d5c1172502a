package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/eggscroll/internal/config"
	"github.com/vovakirdan/eggscroll/internal/core"
)

func newTestWorld(t *testing.T, mode Mode, seed int64) *World {
	t.Helper()
	w, err := NewWorld(config.DefaultPlatformerConfig(), mode, seed)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore(t *testing.T) {
	tests := []struct {
		x        float64
		expected int
	}{
		{0, 0},
		{-5, 0},
		{100, 0},
		{1, -460},
		{math.E, -458},
		{1000, 6447},
	}

	for _, tt := range tests {
		if got := Score(tt.x); got != tt.expected {
			t.Errorf("Score(%v) = %d, expected %d", tt.x, got, tt.expected)
		}
	}
}

func TestNewWorldEndless(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 1)

	if got := w.Platforms(); len(got) != 1 {
		t.Fatalf("platforms = %d, expected the start platform only", len(got))
	}
	first := w.Platforms()[0]
	if first.Pos != core.V(100, 400) || first.Size() != 100 {
		t.Errorf("start platform at %v size %v, expected (100, 400) size 100", first.Pos, first.Size())
	}
	if w.Farthest() != 0 {
		t.Errorf("farthest = %v, expected 0", w.Farthest())
	}
	if w.Score() != 0 || w.GameOver() || w.Ticks() != 0 {
		t.Errorf("fresh world: score %d, over %v, ticks %d", w.Score(), w.GameOver(), w.Ticks())
	}
	if w.Sampler().Rows() != 90 || w.Sampler().Cols() != 90 {
		t.Errorf("field = %dx%d, expected 90x90", w.Sampler().Rows(), w.Sampler().Cols())
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Player.Size = 0
	if _, err := NewWorld(cfg, ModeEndless, 1); err == nil {
		t.Error("NewWorld() should reject a zero player size")
	}
	if _, err := NewWorld(config.DefaultPlatformerConfig(), Mode(99), 1); err == nil {
		t.Error("NewWorld() should reject an unknown mode")
	}
}

func TestFeedFromNoise(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 7)
	s := w.Sampler()

	w.Tick() // 100 > 0 - 400: platform at 400
	w.Tick() // 100 > 400 - 400: platform at 800
	w.Tick() // 100 <= 800 - 400: nothing

	ps := w.Platforms()
	if len(ps) != 3 {
		t.Fatalf("platforms = %d, expected 3", len(ps))
	}
	if w.Farthest() != 800 {
		t.Errorf("farthest = %v, expected 800", w.Farthest())
	}

	expected := []core.Vec2{
		core.V(400, s.HeightAt(s.Value(0, 0))),
		core.V(800, s.HeightAt(s.Value(0, 1))),
	}
	for i, want := range expected {
		if got := ps[i+1].Pos; got != want {
			t.Errorf("platform %d at %v, expected %v", i+1, got, want)
		}
	}
}

func TestRowRotation(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 3)

	for range 49 {
		w.Tick()
	}
	if w.Row() != 0 {
		t.Errorf("row after 49 ticks = %d, expected 0", w.Row())
	}
	w.Tick()
	if w.Row() != 1 {
		t.Errorf("row after 50 ticks = %d, expected 1", w.Row())
	}
	for range 50 {
		w.Tick()
	}
	if w.Row() != 2 {
		t.Errorf("row after 100 ticks = %d, expected 2", w.Row())
	}
	if w.GameOver() {
		t.Error("player resting on the start platform should be alive")
	}
}

func TestPlatformsTrimToCapacity(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 5)

	for range 20 {
		w.player.Pos = core.V(w.Farthest(), -1000)
		w.player.Vel = core.Vec2{}
		w.Tick()
	}

	ps := w.Platforms()
	if len(ps) != 10 {
		t.Fatalf("platforms = %d, expected 10", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Pos.X-ps[i-1].Pos.X != 400 {
			t.Errorf("platform %d at x=%v follows x=%v, expected spacing 400", i, ps[i].Pos.X, ps[i-1].Pos.X)
		}
	}
	if ps[len(ps)-1].Pos.X != w.Farthest() {
		t.Errorf("newest platform x = %v, expected farthest %v", ps[len(ps)-1].Pos.X, w.Farthest())
	}
}

func TestSideScroll(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 1)
	third := 1000.0 / 3

	w.player.Pos = core.V(1000, 200)
	w.Tick()
	if !approx(w.Scroll(), 1000-1000+third) {
		t.Errorf("scroll after moving right = %v, expected %v", w.Scroll(), third)
	}

	w.player.Pos = core.V(200, 200)
	w.player.Vel = core.Vec2{}
	w.Tick()
	if !approx(w.Scroll(), 200-third) {
		t.Errorf("scroll after moving left = %v, expected %v", w.Scroll(), 200-third)
	}
}

func TestDeathAndRestart(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 11)
	for range 60 {
		w.Tick()
	}
	row := w.Row()

	w.player.Pos = core.V(5000, 510)
	w.Tick()
	if !w.GameOver() {
		t.Fatal("player below the water line should die")
	}
	if w.Score() != Score(5000) {
		t.Errorf("score = %d, expected %d", w.Score(), Score(5000))
	}

	ticks := w.Ticks()
	w.Tick()
	if w.Ticks() != ticks {
		t.Error("a finished world should not advance")
	}

	w.Restart()
	if w.GameOver() {
		t.Error("restart should clear game over")
	}
	if w.player.Pos != core.V(100, 200) || w.player.Vel != (core.Vec2{}) {
		t.Errorf("player after restart at %v moving %v", w.player.Pos, w.player.Vel)
	}
	if len(w.Platforms()) != 1 || w.Farthest() != 0 || w.Scroll() != 0 {
		t.Errorf("restart left platforms %d, farthest %v, scroll %v", len(w.Platforms()), w.Farthest(), w.Scroll())
	}
	if w.Row() != row {
		t.Errorf("restart moved the noise row from %d to %d", row, w.Row())
	}
	if w.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", w.Score())
	}
}

func TestLaunchThroughWorld(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 1)

	w.Press(120, 170)
	w.Drag(20, 110)
	if _, _, ok := w.Launch(); !ok {
		t.Error("launch line should be visible while dragging")
	}

	dv, ok := w.Release(20, 110)
	if !ok || !approx(dv.X, 2) || !approx(dv.Y, 2) {
		t.Errorf("Release() = %v, %v, expected (2, 2)", dv, ok)
	}
	if !approx(w.player.Vel.X, 2) || !approx(w.player.Vel.Y, 2) {
		t.Errorf("velocity = %v, expected (2, 2)", w.player.Vel)
	}
	if _, _, ok := w.Launch(); ok {
		t.Error("launch should be cleared after release")
	}
	if _, ok := w.Release(0, 0); ok {
		t.Error("second release should be a no-op")
	}
}

func TestLaunchIgnoredAfterDeath(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 1)
	w.player.Pos = core.V(100, 550)
	w.Tick()

	w.Press(120, 520)
	if _, ok := w.Release(0, 0); ok {
		t.Error("launch after death should be ignored")
	}
}

func TestWorldDeterministic(t *testing.T) {
	run := func() *World {
		w := newTestWorld(t, ModeEndless, 99)
		w.Press(120, 170)
		w.Release(0, 100)
		for range 300 {
			w.Tick()
		}
		return w
	}

	a, b := run(), run()
	if a.player.Pos != b.player.Pos || a.player.Vel != b.player.Vel {
		t.Errorf("players diverged: %v/%v vs %v/%v", a.player.Pos, a.player.Vel, b.player.Pos, b.player.Vel)
	}
	pa, pb := a.Platforms(), b.Platforms()
	if len(pa) != len(pb) {
		t.Fatalf("platform counts diverged: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Pos != pb[i].Pos {
			t.Errorf("platform %d diverged: %v vs %v", i, pa[i].Pos, pb[i].Pos)
		}
	}
	if a.Score() != b.Score() || a.GameOver() != b.GameOver() {
		t.Error("score or game over diverged")
	}
}

func TestDifficultyWidensFeed(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)

	w, err := NewWorld(cfg, ModeEndless, 1)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	// Level 0.7 at score 0: 400 + 0.7*200.
	if !approx(w.BlockDistance(), 540) {
		t.Errorf("block distance = %v, expected 540", w.BlockDistance())
	}
	w.Tick()
	if !approx(w.Farthest(), 540) {
		t.Errorf("first fed platform at %v, expected 540", w.Farthest())
	}
}

func TestSandbox(t *testing.T) {
	w := newTestWorld(t, ModeSandbox, 0)

	if len(w.Platforms()) != 3 {
		t.Fatalf("sandbox platforms = %d, expected 3", len(w.Platforms()))
	}
	if vw, vh := w.Viewport(); vw != 600 || vh != 400 {
		t.Errorf("sandbox viewport = %vx%v, expected 600x400", vw, vh)
	}

	w.player.Pos = core.V(900, 10000)
	for range 10 {
		w.Tick()
	}
	if w.GameOver() || w.Scroll() != 0 || w.Score() != 0 {
		t.Errorf("sandbox: over %v, scroll %v, score %d", w.GameOver(), w.Scroll(), w.Score())
	}
	if len(w.Platforms()) != 3 {
		t.Errorf("sandbox should not feed platforms, got %d", len(w.Platforms()))
	}

	w.Restart()
	if w.player.Pos != core.V(50, 300) || w.player.Vel != (core.Vec2{}) {
		t.Errorf("sandbox restart: player at %v moving %v", w.player.Pos, w.player.Vel)
	}
	if len(w.Platforms()) != 3 {
		t.Errorf("sandbox restart should keep the platforms, got %d", len(w.Platforms()))
	}
}
