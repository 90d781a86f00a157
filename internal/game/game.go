// Package game glues the simulation core to the render boundary: it turns
// key events into player commands and paints the grid, player and ray.
package game

import (
	"log"

	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/input"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Grid         *gridmap.Map
	Player       *player.State
	Controller   *input.Controller
	Stepper      *raycast.Stepper
	InputMgr     render.InputManager
	Debug        bool

	frame       Frame
	lastCommand input.Command
	dirty       bool
	frameCount  int
}

// New builds a game from cfg. The first frame is pending a redraw.
func New(cfg *simulation.Config, grid *gridmap.Map, inputMgr render.InputManager) *Game {
	p := cfg.NewPlayer()
	return &Game{
		ScreenWidth:  cfg.Viewport.Width,
		ScreenHeight: cfg.Viewport.Height,
		Grid:         grid,
		Player:       p,
		Controller:   cfg.NewController(p),
		Stepper:      cfg.NewStepper(grid),
		InputMgr:     inputMgr,
		Debug:        cfg.Viewport.Debug,
		dirty:        true,
	}
}

// Update handles the key events of one tick.
func (g *Game) Update() error {
	if g.InputMgr == nil {
		return nil
	}

	for _, key := range g.InputMgr.TypedKeys() {
		if key == render.KeyQ || key == render.KeyEscape {
			log.Println("Quit requested")
			return render.ErrQuit
		}
		g.HandleKey(key.Rune())
	}
	return nil
}

// HandleKey applies one key event and requests a redraw, whether or not
// the key mapped to a command.
func (g *Game) HandleKey(key rune) input.Command {
	cmd := g.Controller.HandleKey(key)
	if cmd != input.CommandNone {
		g.lastCommand = cmd
	}
	g.RequestRedraw()
	return cmd
}

// RequestRedraw marks the frame stale. It is rebuilt on the next Draw.
func (g *Game) RequestRedraw() {
	g.dirty = true
}

// NeedsRedraw reports whether a redraw was requested since the last Draw.
func (g *Game) NeedsRedraw() bool {
	return g.dirty
}

// Frame returns the most recently built frame.
func (g *Game) Frame() Frame {
	return g.frame
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// buildFrame snapshots the player and casts the central ray.
func (g *Game) buildFrame() Frame {
	snap := g.Player.Snapshot()
	return Frame{
		Player:      snap,
		Ray:         g.Stepper.Cast(snap.Pos, snap.Angle),
		LastCommand: g.lastCommand.String(),
	}
}
