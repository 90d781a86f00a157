// Package cli holds the command-line flags shared by the raycaster binaries.
package cli

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Flags mirrors the config options that can be overridden on the command line.
type Flags struct {
	// ConfigPath is the JSON config file; a missing file means defaults.
	ConfigPath string

	// MapPath overrides the map file from the config.
	MapPath string

	// Axis disables rotation: w/s/a/d move along the screen axes.
	Axis bool

	// Scan selects the grid lines rays cross ("horizontal" or "both").
	Scan string

	// Debug enables the HUD overlay and per-frame logging.
	Debug bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "raycaster.json", "simulation config file (defaults are used if it does not exist)")
	fs.StringVar(&f.MapPath, "map", "", "JSON map file, overrides the config")
	fs.BoolVar(&f.Axis, "axis", false, "disable rotation and move along the screen axes")
	fs.StringVar(&f.Scan, "scan", "", `ray scan mode: "horizontal" or "both"`)
	fs.BoolVar(&f.Debug, "debug", false, "show the HUD overlay and log frames")
}

// Load reads the config, applies the flag overrides and loads the grid.
func (f *Flags) Load() (*simulation.Config, *gridmap.Map, error) {
	cfg, err := simulation.LoadConfig(f.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if f.MapPath != "" {
		cfg.Map.Path = f.MapPath
	}
	if f.Axis {
		cfg.Input.RotationEnabled = false
	}
	if f.Scan != "" {
		cfg.Ray.Scan = f.Scan
	}
	if f.Debug {
		cfg.Viewport.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}

	grid, err := cfg.LoadGrid()
	if err != nil {
		return nil, nil, err
	}

	name := grid.Name()
	if name == "" {
		name = cfg.Map.Path
	}
	log.Printf("Loaded map %q (%dx%d, cell %dpx)", name, grid.Width(), grid.Height(), grid.CellSize())
	return cfg, grid, nil
}
