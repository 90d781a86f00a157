package ebiten

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/raycaster/internal/render"
)

// Key repeat timing in ticks, close to a typical OS keyboard repeat.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var (
	// whiteSubImage is the texture source for filled quads.
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenCanvas implements render.Canvas on an ebiten.Image.
type EbitenCanvas struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Canvas.
func WrapEbitenImage(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// Size returns the width and height of the image.
func (c *EbitenCanvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the entire image with the given color.
func (c *EbitenCanvas) Clear(clr color.Color) {
	c.img.Fill(clr)
}

// FillQuad fills the quad by triangulating it through a vector path.
func (c *EbitenCanvas) FillQuad(q render.Quad, clr color.Color) {
	path := vector.Path{}
	path.MoveTo(q[0].X, q[0].Y)
	for i := 1; i < len(q); i++ {
		path.LineTo(q[i].X, q[i].Y)
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}

	opts := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      false,
	}
	c.img.DrawTriangles(vertices, indices, whiteTexture(), opts)
}

// StrokeLine draws a line segment.
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.img, x0, y0, x1, y1, width, clr, true)
}

// FillPoint draws a square point centered on (x, y).
func (c *EbitenCanvas) FillPoint(x, y, size float32, clr color.Color) {
	vector.FillRect(c.img, x-size/2, y-size/2, size, size, clr, false)
}

// DrawText draws text with the basic 7x13 face.
func (c *EbitenCanvas) DrawText(str string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.img, str, hudFace, op)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// TypedKeys returns keys pressed this tick plus keys held long enough to repeat.
func (m *EbitenInputManager) TypedKeys() []render.Key {
	var keys []render.Key
	for _, key := range render.AllKeys {
		if isTyped(inpututil.KeyPressDuration(keyToEbitenKey(key))) {
			keys = append(keys, key)
		}
	}
	return keys
}

// isTyped reports whether a key held for d ticks fires an event this tick.
func isTyped(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyQ:
		return ebiten.KeyQ
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return ebiten.KeyMax
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop until the game quits or ctx is cancelled.
func (e *EbitenEngine) RunGame(ctx context.Context, game render.Game) error {
	return ebiten.RunGame(&gameAdapter{ctx: ctx, game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	ctx  context.Context
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(WrapEbitenImage(screen))
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
