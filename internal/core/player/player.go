// Package player holds the player's position and facing.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults for a freshly spawned player.
const (
	DefaultSpeed     = 5.0
	DefaultTurnDelta = 0.1
)

const fullTurn = 2 * math.Pi

// State is the player's position, facing angle and the direction vector
// derived from them. The direction is only ever recomputed from the angle.
type State struct {
	pos   mgl64.Vec2
	angle float64
	speed float64
	dir   mgl64.Vec2
}

// New creates a player at pos facing angle (radians), moving speed pixels per step.
func New(pos mgl64.Vec2, angle, speed float64) *State {
	s := &State{pos: pos, speed: speed}
	s.setAngle(normalizeAngle(angle))
	return s
}

// Pos returns the current position.
func (s *State) Pos() mgl64.Vec2 { return s.pos }

// Angle returns the facing angle in [0, 2π).
func (s *State) Angle() float64 { return s.angle }

// Dir returns the forward step vector (cos(a)*speed, sin(a)*speed).
func (s *State) Dir() mgl64.Vec2 { return s.dir }

// Speed returns the length of one forward step.
func (s *State) Speed() float64 { return s.speed }

// TurnLeft rotates counter-clockwise on screen by delta radians.
func (s *State) TurnLeft(delta float64) {
	a := s.angle - delta
	if a < 0 {
		a += fullTurn
	}
	s.setAngle(normalizeAngle(a))
}

// TurnRight rotates clockwise on screen by delta radians.
func (s *State) TurnRight(delta float64) {
	a := s.angle + delta
	if a >= fullTurn {
		a -= fullTurn
	}
	s.setAngle(normalizeAngle(a))
}

// MoveForward steps along the direction vector. Walls do not block movement.
func (s *State) MoveForward() {
	s.pos = s.pos.Add(s.dir)
}

// MoveBackward steps against the direction vector.
func (s *State) MoveBackward() {
	s.pos = s.pos.Sub(s.dir)
}

// Translate moves along the screen axes without touching the facing.
func (s *State) Translate(dx, dy float64) {
	s.pos = s.pos.Add(mgl64.Vec2{dx, dy})
}

// Snapshot is an immutable copy of the state for a single frame.
type Snapshot struct {
	Pos   mgl64.Vec2
	Angle float64
	Dir   mgl64.Vec2
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Pos: s.pos, Angle: s.angle, Dir: s.dir}
}

func (s *State) setAngle(a float64) {
	s.angle = a
	s.dir = mgl64.Vec2{math.Cos(a) * s.speed, math.Sin(a) * s.speed}
}

// normalizeAngle folds any remaining overshoot into [0, 2π). The single
// add/subtract in TurnLeft/TurnRight covers deltas up to a full turn.
func normalizeAngle(a float64) float64 {
	if a >= 0 && a < fullTurn {
		return a
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}
