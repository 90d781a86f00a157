package render

import (
	"context"
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the loop normally.
var ErrQuit = errors.New("render: quit requested")

// Point is a position in logical screen coordinates (y grows downward).
type Point struct {
	X, Y float32
}

// Quad is a filled quadrilateral given by its four corners in drawing order.
type Quad [4]Point

// Canvas is the drawing surface the game paints onto each frame. It
// abstracts the underlying graphics engine so the scene can be drawn by a
// window backend, a terminal backend, or a test recorder alike.
type Canvas interface {
	// Size returns the logical canvas size.
	Size() (width, height int)

	// Clear fills the whole canvas with clr.
	Clear(clr color.Color)

	// FillQuad fills a quadrilateral.
	FillQuad(q Quad, clr color.Color)

	// StrokeLine draws a segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)

	// FillPoint draws a square point of the given size centered on (x, y).
	FillPoint(x, y, size float32, clr color.Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y int, clr color.Color)
}

// InputManager reports keyboard activity once per tick.
type InputManager interface {
	// TypedKeys returns the keys that produced a key event this tick,
	// either a fresh press or an auto-repeat while held.
	TypedKeys() []Key
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reacts to.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyEscape
)

// AllKeys lists every key a backend should poll.
var AllKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeyQ, KeyEscape}

// Rune returns the character code of the key, or 0 for non-character keys.
func (k Key) Rune() rune {
	switch k {
	case KeyW:
		return 'w'
	case KeyA:
		return 'a'
	case KeyS:
		return 's'
	case KeyD:
		return 'd'
	case KeyQ:
		return 'q'
	default:
		return 0
	}
}

// KeyFromRune maps a character to a Key, ignoring case.
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case 'q', 'Q':
		return KeyQ
	default:
		return KeyUnknown
	}
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	// Returning ErrQuit stops the engine without an error.
	Update() error

	// Draw paints the current frame.
	Draw(screen Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Redrawer is implemented by games that only need painting after a redraw
// request. Backends that paint on demand check it before drawing.
type Redrawer interface {
	NeedsRedraw() bool
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop until the game quits, fails, or ctx is done.
	RunGame(ctx context.Context, game Game) error
}
