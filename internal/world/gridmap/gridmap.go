// Package gridmap holds the static tile grid that rays are traced against.
// A Map never changes after construction, so it is safe to share between
// readers without locking.
package gridmap

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Default grid dimensions and cell size in pixels.
const (
	DefaultWidth    = 8
	DefaultHeight   = 8
	DefaultCellSize = 64
)

// defaultRows is the built-in layout. '1' is a wall, '0' is empty.
var defaultRows = []string{
	"11111111",
	"10100001",
	"10100001",
	"10100001",
	"10000001",
	"10000101",
	"10000001",
	"11111111",
}

// Map is a row-major grid of wall flags.
type Map struct {
	name     string
	width    int
	height   int
	cellSize int
	cells    []bool
}

// MapData is the on-disk JSON form of a map.
type MapData struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	CellSize int      `json:"cell_size"`
	Rows     []string `json:"rows"` // one string per row, '1'/'#' wall, '0'/'.' empty
}

// New builds a map from a row-major slice of wall flags.
func New(width, height, cellSize int, cells []bool) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("invalid cell size: %d", cellSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("cell count mismatch: expected %d, got %d", width*height, len(cells))
	}

	owned := make([]bool, len(cells))
	copy(owned, cells)

	return &Map{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    owned,
	}, nil
}

// Default returns the built-in 8x8 layout.
func Default() *Map {
	m, err := FromData(&MapData{
		Name:     "default",
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		Rows:     defaultRows,
	})
	if err != nil {
		panic(fmt.Sprintf("gridmap: built-in layout is invalid: %v", err))
	}
	return m
}

// Load reads a map from a JSON file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	m, err := FromData(&mapData)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return m, nil
}

// FromData validates map data and converts it into a Map.
func FromData(data *MapData) (*Map, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	cells := make([]bool, 0, data.Width*data.Height)
	for _, row := range data.Rows {
		for _, c := range row {
			cells = append(cells, c == '1' || c == '#')
		}
	}

	m, err := New(data.Width, data.Height, data.CellSize, cells)
	if err != nil {
		return nil, err
	}
	m.name = data.Name
	return m, nil
}

// validateMapData checks dimensions and the row strings.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", data.CellSize)
	}

	if len(data.Rows) != data.Height {
		return fmt.Errorf("rows height mismatch: expected %d, got %d", data.Height, len(data.Rows))
	}

	for y, row := range data.Rows {
		if len(row) != data.Width {
			return fmt.Errorf("rows width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
		for x, c := range row {
			switch c {
			case '0', '1', '.', '#':
			default:
				return fmt.Errorf("invalid cell %q at (%d, %d)", c, x, y)
			}
		}
	}

	return nil
}

// Name returns the map name, empty for maps built with New.
func (m *Map) Name() string { return m.name }

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// CellSize returns the edge length of a cell in pixels.
func (m *Map) CellSize() int { return m.cellSize }

// InBounds reports whether (col, row) addresses a cell of the grid.
func (m *Map) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// IsWall reports whether the cell is a wall. Out-of-bounds cells are not walls.
func (m *Map) IsWall(col, row int) bool {
	if !m.InBounds(col, row) {
		return false
	}
	return m.cells[row*m.width+col]
}

// CellOrigin returns the top-left pixel corner of a cell.
func (m *Map) CellOrigin(col, row int) (px, py float64) {
	return float64(col * m.cellSize), float64(row * m.cellSize)
}

// CellAt maps a continuous screen point to the cell containing it.
// ok is false when the point lies outside the grid or is not finite.
func (m *Map) CellAt(px, py float64) (col, row int, ok bool) {
	s := float64(m.cellSize)
	fc := math.Floor(px / s)
	fr := math.Floor(py / s)
	// Compare in float space first so huge or NaN values never reach an int conversion.
	if !(fc >= 0 && fc < float64(m.width) && fr >= 0 && fr < float64(m.height)) {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}

// PixelSize returns the grid extent in pixels.
func (m *Map) PixelSize() (w, h int) {
	return m.width * m.cellSize, m.height * m.cellSize
}
