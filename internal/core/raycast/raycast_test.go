package raycast

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/raycaster/internal/world/gridmap"
)

const tolerance = 1e-6

// openGrid returns a width x height grid with walls only at the given cells.
func openGrid(t *testing.T, width, height int, walls ...[2]int) *gridmap.Map {
	t.Helper()
	cells := make([]bool, width*height)
	for _, w := range walls {
		cells[w[1]*width+w[0]] = true
	}
	m, err := gridmap.New(width, height, 64, cells)
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}
	return m
}

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCastHorizontalAngleIsDegenerate(t *testing.T) {
	s := NewStepper(gridmap.Default())
	origin := mgl64.Vec2{300, 300}

	for _, angle := range []float64{0, math.Pi} {
		hit := s.Cast(origin, angle)
		if hit.End != origin {
			t.Errorf("angle %v: expected end %v, got %v", angle, origin, hit.End)
		}
		if hit.Hit {
			t.Errorf("angle %v: expected no hit", angle)
		}
		if hit.Reason != ReasonDegenerate {
			t.Errorf("angle %v: expected reason degenerate, got %s", angle, hit.Reason)
		}
		if hit.Steps != 0 {
			t.Errorf("angle %v: expected 0 steps, got %d", angle, hit.Steps)
		}
	}
}

func TestCastDownHitsWallLine(t *testing.T) {
	grid := openGrid(t, 8, 8, [2]int{4, 6})
	s := NewStepper(grid)

	hit := s.Cast(mgl64.Vec2{288, 288}, math.Pi/2)
	if !hit.Hit || hit.Reason != ReasonWall {
		t.Fatalf("Expected wall hit, got %+v", hit)
	}
	if !near(hit.End.Y(), 384) {
		t.Errorf("Expected hit on grid line y=384, got %v", hit.End.Y())
	}
	if !near(hit.End.X(), 288) {
		t.Errorf("Expected x to stay at 288, got %v", hit.End.X())
	}
	if hit.Steps != 1 {
		t.Errorf("Expected 1 step, got %d", hit.Steps)
	}
	if hit.Steps > DefaultBudget {
		t.Errorf("Expected at most %d steps, got %d", DefaultBudget, hit.Steps)
	}
}

func TestCastUpHitsWall(t *testing.T) {
	grid := openGrid(t, 8, 8, [2]int{4, 1})
	s := NewStepper(grid)

	hit := s.Cast(mgl64.Vec2{288, 288}, 3*math.Pi/2)
	if !hit.Hit {
		t.Fatalf("Expected wall hit, got %+v", hit)
	}
	if !near(hit.End.Y(), 128-lineEpsilon) {
		t.Errorf("Expected hit just above y=128, got %v", hit.End.Y())
	}
	if hit.Steps != 2 {
		t.Errorf("Expected 2 steps, got %d", hit.Steps)
	}
}

func TestCastDiagonalDefaultMap(t *testing.T) {
	s := NewStepper(gridmap.Default())

	hit := s.Cast(mgl64.Vec2{300, 300}, math.Pi/4)
	if !hit.Hit {
		t.Fatalf("Expected wall hit, got %+v", hit)
	}
	if !near(hit.End.X(), 320) || !near(hit.End.Y(), 320) {
		t.Errorf("Expected hit at (320, 320), got %v", hit.End)
	}
	if !near(hit.Length(), 20*math.Sqrt2) {
		t.Errorf("Expected length %v, got %v", 20*math.Sqrt2, hit.Length())
	}
}

func TestCastLeavesGrid(t *testing.T) {
	grid := openGrid(t, 8, 8)
	s := NewStepper(grid)

	hit := s.Cast(mgl64.Vec2{288, 288}, math.Pi/2)
	if hit.Hit {
		t.Error("Expected no wall hit")
	}
	if hit.Reason != ReasonOutOfBounds {
		t.Errorf("Expected reason out of bounds, got %s", hit.Reason)
	}
	if hit.Steps != 3 {
		t.Errorf("Expected 3 steps before leaving the grid, got %d", hit.Steps)
	}
	if !near(hit.End.Y(), 512) {
		t.Errorf("Expected end on the grid edge y=512, got %v", hit.End.Y())
	}
}

func TestCastBudgetExhausted(t *testing.T) {
	grid := openGrid(t, 1, 20)
	s := NewStepper(grid)

	hit := s.Cast(mgl64.Vec2{32, 32}, math.Pi/2)
	if hit.Reason != ReasonBudget {
		t.Fatalf("Expected reason budget, got %s", hit.Reason)
	}
	if hit.Steps != DefaultBudget {
		t.Errorf("Expected %d steps, got %d", DefaultBudget, hit.Steps)
	}
	if !near(hit.End.Y(), 64+DefaultBudget*64) {
		t.Errorf("Expected end y=%d, got %v", 64+DefaultBudget*64, hit.End.Y())
	}
}

func TestCastAlwaysTerminatesWithinBudget(t *testing.T) {
	grids := []*gridmap.Map{gridmap.Default(), openGrid(t, 8, 8), openGrid(t, 1, 1)}
	origins := []mgl64.Vec2{
		{300, 300}, {1, 1}, {511, 511}, {-50, 200}, {2000, -2000}, {64, 64},
	}

	for _, grid := range grids {
		for _, scan := range []ScanMode{ScanHorizontal, ScanBoth} {
			s := &Stepper{Grid: grid, Budget: DefaultBudget, Scan: scan}
			for _, origin := range origins {
				for a := 0.0; a < 2*math.Pi; a += 0.013 {
					hit := s.Cast(origin, a)
					if hit.Steps < 0 || hit.Steps > DefaultBudget {
						t.Fatalf("origin %v angle %v: steps %d outside budget", origin, a, hit.Steps)
					}
					if hit.Hit {
						col, row, ok := grid.CellAt(hit.End.X(), hit.End.Y())
						if !ok || !grid.IsWall(col, row) {
							t.Fatalf("origin %v angle %v: hit reported off a wall at %v", origin, a, hit.End)
						}
					}
				}
			}
		}
	}
}

func TestScanBothFindsVerticalWall(t *testing.T) {
	s := NewStepper(gridmap.Default())
	s.Scan = ScanBoth

	hit := s.Cast(mgl64.Vec2{300, 300}, 0)
	if !hit.Hit {
		t.Fatalf("Expected vertical scan to hit the east wall, got %+v", hit)
	}
	if !near(hit.End.X(), 448) || !near(hit.End.Y(), 300) {
		t.Errorf("Expected hit at (448, 300), got %v", hit.End)
	}
	if hit.Steps != 2 {
		t.Errorf("Expected 2 steps, got %d", hit.Steps)
	}
}

func TestScanBothPrefersNearerHit(t *testing.T) {
	s := NewStepper(gridmap.Default())
	s.Scan = ScanBoth
	origin := mgl64.Vec2{100, 300}

	for a := 0.05; a < 2*math.Pi; a += 0.1 {
		h := s.castHorizontal(origin, a)
		v := s.castVertical(origin, a)
		got := s.Cast(origin, a)
		if h.Hit && v.Hit {
			want := math.Min(h.Length(), v.Length())
			if !near(got.Length(), want) {
				t.Errorf("angle %v: expected nearer length %v, got %v", a, want, got.Length())
			}
		}
		if !h.Hit && !v.Hit && got != h {
			t.Errorf("angle %v: expected horizontal result when nothing is hit", a)
		}
	}
}

func TestParseScanMode(t *testing.T) {
	for _, name := range []string{"horizontal", "both"} {
		mode, ok := ParseScanMode(name)
		if !ok || mode.String() != name {
			t.Errorf("Expected %q to round trip, got %q (ok=%v)", name, mode, ok)
		}
	}
	if _, ok := ParseScanMode("diagonal"); ok {
		t.Error("Expected unknown scan mode to be rejected")
	}
}
