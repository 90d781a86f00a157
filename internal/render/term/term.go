// Package term renders the game into a terminal with tcell. The logical
// canvas is scaled down to the terminal grid; every primitive is
// rasterized into character cells.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// Glyphs used for the different primitives.
const (
	fillRune  = ' '
	lineRune  = '·'
	pointRune = '@'
)

// Canvas implements render.Canvas on a tcell.Screen. Logical coordinates in
// [0, width) x [0, height) are mapped onto the screen's cells.
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

// NewCanvas wraps screen with a logical size of width x height.
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Size returns the logical canvas size.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// cell maps a logical point to a terminal cell.
func (c *Canvas) cell(x, y float32) (int, int) {
	cols, rows := c.screen.Size()
	cx := int(math.Floor(float64(x) * float64(cols) / float64(c.width)))
	cy := int(math.Floor(float64(y) * float64(rows) / float64(c.height)))
	return cx, cy
}

func (c *Canvas) set(cx, cy int, r rune, style tcell.Style) {
	cols, rows := c.screen.Size()
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}
	c.screen.SetContent(cx, cy, r, nil, style)
}

// Clear fills every cell with the background color.
func (c *Canvas) Clear(clr color.Color) {
	c.screen.Clear()
	style := tcell.StyleDefault.Background(toTcell(clr))
	c.screen.Fill(' ', style)
}

// FillQuad paints the cells whose centers fall inside the quad.
func (c *Canvas) FillQuad(q render.Quad, clr color.Color) {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	cols, rows := c.screen.Size()
	sx := float32(c.width) / float32(cols)
	sy := float32(c.height) / float32(rows)
	x0, y0 := c.cell(minX, minY)
	x1, y1 := c.cell(maxX, maxY)
	style := tcell.StyleDefault.Background(toTcell(clr))

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			center := render.Point{X: (float32(cx) + 0.5) * sx, Y: (float32(cy) + 0.5) * sy}
			if insideQuad(q, center) {
				c.set(cx, cy, fillRune, style)
			}
		}
	}
}

// StrokeLine rasterizes the segment with Bresenham's algorithm. Width is
// ignored; a terminal cell is already wider than any line we draw.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	ax, ay := c.cell(x0, y0)
	bx, by := c.cell(x1, y1)
	fg := toTcell(clr)

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(ax, ay, lineRune, c.styleAt(ax, ay).Foreground(fg))
		if ax == bx && ay == by {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

// FillPoint marks the single cell containing (x, y).
func (c *Canvas) FillPoint(x, y, size float32, clr color.Color) {
	cx, cy := c.cell(x, y)
	c.set(cx, cy, pointRune, c.styleAt(cx, cy).Foreground(toTcell(clr)))
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(text string, x, y int, clr color.Color) {
	cx, cy := c.cell(float32(x), float32(y))
	style := tcell.StyleDefault.Foreground(toTcell(clr))
	for _, r := range text {
		c.set(cx, cy, r, style)
		cx++
	}
}

// styleAt keeps the background of an existing cell so lines and points
// overlay the grid instead of erasing it.
func (c *Canvas) styleAt(cx, cy int) tcell.Style {
	_, _, style, _ := c.screen.GetContent(cx, cy)
	return style
}

// insideQuad reports whether p lies inside the convex quad q.
func insideQuad(q render.Quad, p render.Point) bool {
	var sign float32
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
