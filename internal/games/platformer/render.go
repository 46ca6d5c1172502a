package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/terrain"
)

// Visual characters for rendering
const (
	EggChar    = '█'
	LaunchChar = '•'
)

var (
	skyColor   = core.RGB{R: 40, G: 60, B: 160}
	panelColor = core.RGB{R: 60, G: 60, B: 60}
	deathColor = core.RGB{R: 0, G: 140, B: 140}
)

// view scales the viewport onto a grid of screen cells.
type view struct {
	sx, sy     float64
	cols, rows int
}

func newView(w *World, cols, rows int) view {
	cols = max(cols, 1)
	rows = max(rows, 1)
	vw, vh := w.Viewport()
	return view{
		sx:   float64(cols) / vw,
		sy:   float64(rows) / vh,
		cols: cols,
		rows: rows,
	}
}

func (v view) cellX(x float64) int { return int(math.Floor(x * v.sx)) }
func (v view) cellY(y float64) int { return int(math.Floor(y * v.sy)) }

func (v view) worldX(cx int) float64 { return (float64(cx) + 0.5) / v.sx }
func (v view) worldY(cy int) float64 { return (float64(cy) + 0.5) / v.sy }

// rect converts a world-space box to cells. Every box covers at least one cell.
func (v view) rect(x0, y0, x1, y1 float64) core.Rect {
	cx0, cy0 := v.cellX(x0), v.cellY(y0)
	cx1, cy1 := v.cellX(x1), v.cellY(y1)
	return core.NewRect(cx0, cy0, max(cx1-cx0, 1), max(cy1-cy0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.cols, g.rows = dst.Width(), dst.Height()

	if g.world == nil {
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		}
		return
	}

	w := g.world
	v := newView(w, dst.Width(), dst.Height())

	if w.Mode() == ModeEndless {
		if w.GameOver() {
			g.drawDeath(dst)
			return
		}
		dst.FillBg(core.NewRect(0, 0, dst.Width(), dst.Height()), skyColor)
		g.drawWater(dst, v)
	}

	g.drawPlatforms(dst, v)
	g.drawEgg(dst, v)
	g.drawLaunch(dst, v)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawWater fills the band under the surface of the current noise row.
func (g *Game) drawWater(dst *core.Screen, v view) {
	s := g.world.Sampler()
	row := g.world.Row()
	cols := s.Cols()
	for col := 0; col < cols; col++ {
		val := s.Value(row, col)
		x0, y0, x1, y1 := s.WaterBounds(val, col, cols)
		cx0, cx1 := v.cellX(x0), v.cellX(x1)
		top, bottom := v.cellY(y1), v.cellY(y0)
		if cx1 <= cx0 || bottom <= top {
			continue
		}
		dst.FillBg(core.NewRect(cx0, top, cx1-cx0, bottom-top), terrain.BlueScale(val))
	}
}

func (g *Game) drawPlatforms(dst *core.Screen, v view) {
	scroll := g.world.Scroll()
	for _, p := range g.world.Platforms() {
		r := v.rect(p.Left()-scroll, p.Top(), p.Right()-scroll, p.Bottom())
		dst.DrawBox(r, core.ColorOrange)
	}
}

func (g *Game) drawEgg(dst *core.Screen, v view) {
	p := g.world.Player()
	scroll := g.world.Scroll()
	r := v.rect(p.Left()-scroll, p.Top(), p.Right()-scroll, p.Bottom())
	dst.FillRect(r, EggChar, core.ColorBrightYellow)
}

func (g *Game) drawLaunch(dst *core.Screen, v view) {
	from, to, ok := g.world.Launch()
	if !ok {
		return
	}
	dst.DrawLine(v.cellX(from.X), v.cellY(from.Y), v.cellX(to.X), v.cellY(to.Y), LaunchChar, core.ColorBrightGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	var left string
	if g.world.Mode() == ModeSandbox {
		left = " Sandbox | drag the egg, R resets "
	} else {
		left = fmt.Sprintf(" Score: %d ", g.world.Score())
	}
	dst.FillBg(core.NewRect(1, 0, len([]rune(left)), 1), panelColor)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	if g.world.Mode() == ModeEndless && g.cfg.Difficulty.Enabled {
		right := fmt.Sprintf(" Gap: %.0f ", g.world.BlockDistance())
		x := dst.Width() - len(right) - 1
		dst.FillBg(core.NewRect(x, 0, len(right), 1), panelColor)
		dst.DrawTextColor(x, 0, right, core.ColorBrightWhite)
	}
}

func (g *Game) drawDeath(dst *core.Screen) {
	dst.FillBg(core.NewRect(0, 0, dst.Width(), dst.Height()), deathColor)
	drawCenteredMessage(dst,
		fmt.Sprintf("You Died! Total Score: %d", g.world.Score()),
		"Press R to restart")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.FillBg(box, panelColor)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
