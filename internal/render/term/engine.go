package term

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// DefaultTick is the update interval of the terminal loop.
const DefaultTick = 16 * time.Millisecond

var titleColor = color.RGBA{200, 200, 200, 255}

// InputManager queues key events read from the terminal. It is filled and
// drained on the engine's loop goroutine only.
type InputManager struct {
	pending []render.Key
}

// NewInputManager returns an empty key queue.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// TypedKeys drains the keys received since the last tick. The terminal
// already delivers auto-repeat as separate key events.
func (m *InputManager) TypedKeys() []render.Key {
	keys := m.pending
	m.pending = nil
	return keys
}

// push records a terminal key event.
func (m *InputManager) push(ev *tcell.EventKey) {
	var key render.Key
	switch ev.Key() {
	case tcell.KeyEscape:
		key = render.KeyEscape
	case tcell.KeyCtrlC:
		key = render.KeyQ
	case tcell.KeyRune:
		key = render.KeyFromRune(ev.Rune())
	}
	if key != render.KeyUnknown {
		m.pending = append(m.pending, key)
	}
}

// Engine runs a render.Game on a tcell screen. The screen must already be
// initialized; the caller owns Fini.
type Engine struct {
	Screen tcell.Screen
	Input  *InputManager
	Tick   time.Duration

	title string
}

// NewEngine creates an engine for screen feeding keys into input.
func NewEngine(screen tcell.Screen, input *InputManager) *Engine {
	return &Engine{Screen: screen, Input: input, Tick: DefaultTick}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the status line shown on the last terminal row.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame dispatches terminal events and ticks until the game quits, the
// screen closes, or ctx is done. Game state is only touched from this
// goroutine; the tcell reader just forwards events over a channel.
func (e *Engine) RunGame(ctx context.Context, game render.Game) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go e.Screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(e.Tick)
	defer ticker.Stop()

	canvas := e.newCanvas(game)
	e.paint(game, canvas)
	force := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				e.Input.push(ev)
			case *tcell.EventResize:
				e.Screen.Sync()
				canvas = e.newCanvas(game)
				force = true
			}

		case <-ticker.C:
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}
			if force || needsRedraw(game) {
				e.paint(game, canvas)
				force = false
			}
		}
	}
}

func (e *Engine) paint(game render.Game, canvas *Canvas) {
	game.Draw(canvas)
	e.drawTitle()
	e.Screen.Show()
}

func (e *Engine) newCanvas(game render.Game) *Canvas {
	cols, rows := e.Screen.Size()
	w, h := game.Layout(cols, rows)
	return NewCanvas(e.Screen, w, h)
}

func (e *Engine) drawTitle() {
	if e.title == "" {
		return
	}
	_, rows := e.Screen.Size()
	style := tcell.StyleDefault.Foreground(toTcell(titleColor))
	for i, r := range []rune(e.title) {
		e.Screen.SetContent(i, rows-1, r, nil, style)
	}
}

// needsRedraw asks games that track redraw requests; others always repaint.
func needsRedraw(game render.Game) bool {
	if r, ok := game.(render.Redrawer); ok {
		return r.NeedsRedraw()
	}
	return true
}
