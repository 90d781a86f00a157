// Package raycast marches a single ray across grid lines until it meets a wall.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// DefaultBudget is the number of grid-line crossings examined per ray.
const DefaultBudget = 8

// lineEpsilon nudges an upward or leftward ray just past the grid line so
// the floor division lands in the cell on the far side.
const lineEpsilon = 0.0001

// ScanMode selects which grid lines a ray is intersected with.
type ScanMode int

const (
	// ScanHorizontal only crosses horizontal grid lines.
	ScanHorizontal ScanMode = iota
	// ScanBoth also crosses vertical grid lines and keeps the nearer wall.
	ScanBoth
)

// String returns the flag/config name of the mode.
func (m ScanMode) String() string {
	switch m {
	case ScanHorizontal:
		return "horizontal"
	case ScanBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseScanMode converts a config name into a ScanMode.
func ParseScanMode(s string) (ScanMode, bool) {
	switch s {
	case "", "horizontal":
		return ScanHorizontal, true
	case "both":
		return ScanBoth, true
	default:
		return ScanHorizontal, false
	}
}

// Reason records why a ray stopped.
type Reason int

const (
	ReasonBudget Reason = iota
	ReasonWall
	ReasonOutOfBounds
	ReasonDegenerate
)

func (r Reason) String() string {
	switch r {
	case ReasonBudget:
		return "budget"
	case ReasonWall:
		return "wall"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Hit is the result of one cast.
type Hit struct {
	Origin mgl64.Vec2
	End    mgl64.Vec2
	Hit    bool // a wall was struck before the budget ran out
	Steps  int  // grid-line advances taken
	Reason Reason
}

// Length returns the distance from origin to end.
func (h Hit) Length() float64 {
	return h.End.Sub(h.Origin).Len()
}

// Stepper casts rays against a grid.
type Stepper struct {
	Grid   *gridmap.Map
	Budget int
	Scan   ScanMode
}

// NewStepper returns a horizontal-scan stepper with the default budget.
func NewStepper(grid *gridmap.Map) *Stepper {
	return &Stepper{Grid: grid, Budget: DefaultBudget, Scan: ScanHorizontal}
}

// Cast traces a ray from origin at angle (radians, y axis pointing down).
func (s *Stepper) Cast(origin mgl64.Vec2, angle float64) Hit {
	h := s.castHorizontal(origin, angle)
	if s.Scan != ScanBoth {
		return h
	}

	v := s.castVertical(origin, angle)
	switch {
	case h.Hit && v.Hit:
		if v.Length() < h.Length() {
			return v
		}
		return h
	case v.Hit:
		return v
	default:
		return h
	}
}

// castHorizontal steps across horizontal grid lines.
func (s *Stepper) castHorizontal(origin mgl64.Vec2, angle float64) Hit {
	if angle == 0 || angle == math.Pi {
		return Hit{Origin: origin, End: origin, Reason: ReasonDegenerate}
	}

	size := float64(s.Grid.CellSize())
	px, py := origin.X(), origin.Y()
	aTan := -1 / math.Tan(angle)

	var rx, ry, xo, yo float64
	if angle > math.Pi {
		// looking up
		ry = math.Floor(py/size)*size - lineEpsilon
		yo = -size
	} else {
		// looking down
		ry = math.Floor(py/size)*size + size
		yo = size
	}
	rx = (py-ry)*aTan + px
	xo = -yo * aTan

	return s.march(origin, rx, ry, xo, yo)
}

// castVertical steps across vertical grid lines.
func (s *Stepper) castVertical(origin mgl64.Vec2, angle float64) Hit {
	if angle == math.Pi/2 || angle == 3*math.Pi/2 {
		return Hit{Origin: origin, End: origin, Reason: ReasonDegenerate}
	}

	size := float64(s.Grid.CellSize())
	px, py := origin.X(), origin.Y()
	nTan := -math.Tan(angle)

	var rx, ry, xo, yo float64
	if angle > math.Pi/2 && angle < 3*math.Pi/2 {
		// looking left
		rx = math.Floor(px/size)*size - lineEpsilon
		xo = -size
	} else {
		// looking right
		rx = math.Floor(px/size)*size + size
		xo = size
	}
	ry = (px-rx)*nTan + py
	yo = -xo * nTan

	return s.march(origin, rx, ry, xo, yo)
}

// march advances from the first intersection (rx, ry) by (xo, yo) until a
// wall, the grid edge, or the step budget stops it.
func (s *Stepper) march(origin mgl64.Vec2, rx, ry, xo, yo float64) Hit {
	hit := Hit{Origin: origin, Reason: ReasonBudget}
	for hit.Steps < s.Budget {
		col, row, ok := s.Grid.CellAt(rx, ry)
		if !ok {
			hit.Reason = ReasonOutOfBounds
			break
		}
		if s.Grid.IsWall(col, row) {
			hit.Hit = true
			hit.Reason = ReasonWall
			break
		}
		rx += xo
		ry += yo
		hit.Steps++
	}
	hit.End = mgl64.Vec2{rx, ry}
	return hit
}
