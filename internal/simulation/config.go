// Package simulation provides configuration for the raycaster simulation.
// Values can be overridden from a JSON file; anything left out keeps its default.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/input"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Config holds all simulation settings
type Config struct {
	Map      MapConfig      `json:"map"`
	Player   PlayerConfig   `json:"player"`
	Input    InputConfig    `json:"input"`
	Ray      RayConfig      `json:"ray"`
	Viewport ViewportConfig `json:"viewport"`
}

// MapConfig selects the grid
type MapConfig struct {
	Path string `json:"path"` // JSON map file, empty for the built-in layout
}

// PlayerConfig defines the spawn state
type PlayerConfig struct {
	StartX     float64 `json:"start_x"`
	StartY     float64 `json:"start_y"`
	StartAngle float64 `json:"start_angle"` // radians
	Speed      float64 `json:"speed"`       // pixels per forward step
}

// InputConfig defines how keys move the player
type InputConfig struct {
	RotationEnabled bool    `json:"rotation_enabled"`
	TurnDelta       float64 `json:"turn_delta"` // radians per turn key
	AxisStep        float64 `json:"axis_step"`  // pixels per key with rotation disabled
}

// RayConfig defines the ray stepper
type RayConfig struct {
	StepBudget int    `json:"step_budget"`
	Scan       string `json:"scan"` // "horizontal" or "both"
}

// ViewportConfig is the logical drawing area
type ViewportConfig struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Debug  bool `json:"debug"` // draw the HUD overlay
}

// DefaultConfig returns the stock demo settings
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			StartX:     300,
			StartY:     300,
			StartAngle: 0,
			Speed:      player.DefaultSpeed,
		},
		Input: InputConfig{
			RotationEnabled: true,
			TurnDelta:       player.DefaultTurnDelta,
			AxisStep:        input.DefaultAxisStep,
		},
		Ray: RayConfig{
			StepBudget: raycast.DefaultBudget,
			Scan:       raycast.ScanHorizontal.String(),
		},
		Viewport: ViewportConfig{
			Width:  1024,
			Height: 512,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %v", c.Player.Speed)
	}
	if c.Input.TurnDelta <= 0 {
		return fmt.Errorf("turn delta must be positive, got %v", c.Input.TurnDelta)
	}
	if c.Input.AxisStep <= 0 {
		return fmt.Errorf("axis step must be positive, got %v", c.Input.AxisStep)
	}
	if c.Ray.StepBudget <= 0 {
		return fmt.Errorf("step budget must be positive, got %d", c.Ray.StepBudget)
	}
	if _, ok := raycast.ParseScanMode(c.Ray.Scan); !ok {
		return fmt.Errorf("unknown scan mode %q", c.Ray.Scan)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport: %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

// LoadGrid returns the configured map, or the built-in layout when no path is set
func (c *Config) LoadGrid() (*gridmap.Map, error) {
	if c.Map.Path == "" {
		return gridmap.Default(), nil
	}
	return gridmap.Load(c.Map.Path)
}

// NewPlayer spawns the player described by the config
func (c *Config) NewPlayer() *player.State {
	return player.New(mgl64.Vec2{c.Player.StartX, c.Player.StartY}, c.Player.StartAngle, c.Player.Speed)
}

// NewController wires a controller for p using the input settings
func (c *Config) NewController(p *player.State) *input.Controller {
	return &input.Controller{
		Player:          p,
		RotationEnabled: c.Input.RotationEnabled,
		TurnDelta:       c.Input.TurnDelta,
		AxisStep:        c.Input.AxisStep,
	}
}

// NewStepper builds the ray stepper for grid
func (c *Config) NewStepper(grid *gridmap.Map) *raycast.Stepper {
	scan, _ := raycast.ParseScanMode(c.Ray.Scan)
	return &raycast.Stepper{Grid: grid, Budget: c.Ray.StepBudget, Scan: scan}
}
