package game

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Frame is everything the scene needs for one redraw.
type Frame struct {
	Player player.Snapshot
	Ray    raycast.Hit
	// Last command applied, shown on the HUD
	LastCommand string
}

// Scene colors.
var (
	BackgroundColor = color.RGBA{77, 77, 77, 255}
	WallColor       = color.RGBA{255, 255, 255, 255}
	FloorColor      = color.RGBA{0, 0, 0, 255}
	PlayerColor     = color.RGBA{255, 255, 0, 255}
	RayColor        = color.RGBA{0, 255, 0, 255}
	HUDColor        = color.RGBA{240, 240, 240, 255}
)

// Scene sizes in logical pixels.
const (
	playerPointSize  = 8
	facingLineWidth  = 3
	facingLineLength = 5 // multiples of the direction vector
	rayLineWidth     = 1
	cellInset        = 1

	hudMargin     = 16
	hudLineHeight = 16
	hudWidth      = 40 * 7 // 40 columns of the 7x13 face
)
