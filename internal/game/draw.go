package game

import (
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the game to the screen. A pending redraw request rebuilds
// the frame first; otherwise the last frame is painted again.
func (g *Game) Draw(screen render.Canvas) {
	if g.dirty {
		g.frame = g.buildFrame()
		g.dirty = false
		g.frameCount++
		if g.Debug {
			log.Printf("DEBUG Frame %d: pos=%v angle=%.3f ray=%s steps=%d",
				g.frameCount, g.frame.Player.Pos, g.frame.Player.Angle, g.frame.Ray.Reason, g.frame.Ray.Steps)
		}
	}

	screen.Clear(BackgroundColor)
	g.drawMap2D(screen)
	g.drawPlayer(screen)
	g.drawRay(screen)
	if g.Debug {
		g.drawHUD(screen)
	}
}

func (g *Game) drawMap2D(screen render.Canvas) {
	size := float32(g.Grid.CellSize())
	for row := 0; row < g.Grid.Height(); row++ {
		for col := 0; col < g.Grid.Width(); col++ {
			clr := FloorColor
			if g.Grid.IsWall(col, row) {
				clr = WallColor
			}
			ox, oy := g.Grid.CellOrigin(col, row)
			x0 := float32(ox) + cellInset
			y0 := float32(oy) + cellInset
			x1 := float32(ox) + size - cellInset
			y1 := float32(oy) + size - cellInset
			screen.FillQuad(render.Quad{
				{X: x0, Y: y0},
				{X: x0, Y: y1},
				{X: x1, Y: y1},
				{X: x1, Y: y0},
			}, clr)
		}
	}
}

func (g *Game) drawPlayer(screen render.Canvas) {
	p := g.frame.Player
	x, y := float32(p.Pos.X()), float32(p.Pos.Y())
	screen.FillPoint(x, y, playerPointSize, PlayerColor)

	tip := p.Pos.Add(p.Dir.Mul(facingLineLength))
	screen.StrokeLine(x, y, float32(tip.X()), float32(tip.Y()), facingLineWidth, PlayerColor)
}

func (g *Game) drawRay(screen render.Canvas) {
	ray := g.frame.Ray
	screen.StrokeLine(
		float32(ray.Origin.X()), float32(ray.Origin.Y()),
		float32(ray.End.X()), float32(ray.End.Y()),
		rayLineWidth, RayColor)
}

func (g *Game) drawHUD(screen render.Canvas) {
	mode := "rotate"
	if !g.Controller.RotationEnabled {
		mode = "axis"
	}
	p := g.frame.Player
	ray := g.frame.Ray
	gridW, _ := g.Grid.PixelSize()

	lines := []string{
		fmt.Sprintf("mode: %s  scan: %s", mode, g.Stepper.Scan),
		fmt.Sprintf("pos: %.1f, %.1f", p.Pos.X(), p.Pos.Y()),
		fmt.Sprintf("angle: %.3f", p.Angle),
		fmt.Sprintf("ray: %s (%d steps, %.1fpx)", ray.Reason, ray.Steps, ray.Length()),
		fmt.Sprintf("last: %s", g.frame.LastCommand),
	}
	x := gridW + hudMargin
	if x+hudWidth > g.ScreenWidth {
		// No room beside the grid; overlay its top-left corner.
		x = hudMargin
	}
	for i, line := range lines {
		screen.DrawText(line, x, hudMargin+i*hudLineHeight, HUDColor)
	}
}
