package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return &f
}

func TestLoadDefaults(t *testing.T) {
	f := parse(t, "-config", filepath.Join(t.TempDir(), "none.json"))

	cfg, grid, err := f.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.Input.RotationEnabled {
		t.Error("Expected rotation enabled by default")
	}
	if grid.Name() != "default" {
		t.Errorf("Expected built-in map, got '%s'", grid.Name())
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "tiny.json")
	body := `{"name": "tiny", "width": 2, "height": 2, "cell_size": 16, "rows": ["11", "10"]}`
	if err := os.WriteFile(mapPath, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}

	f := parse(t,
		"-config", filepath.Join(dir, "none.json"),
		"-map", mapPath,
		"-axis",
		"-scan", "both",
		"-debug",
	)

	cfg, grid, err := f.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Input.RotationEnabled {
		t.Error("Expected -axis to disable rotation")
	}
	if cfg.Ray.Scan != "both" {
		t.Errorf("Expected scan 'both', got '%s'", cfg.Ray.Scan)
	}
	if !cfg.Viewport.Debug {
		t.Error("Expected -debug to enable the HUD")
	}
	if grid.Name() != "tiny" || grid.CellSize() != 16 {
		t.Errorf("Expected tiny map with 16px cells, got '%s'/%d", grid.Name(), grid.CellSize())
	}
}

func TestLoadRejectsBadScan(t *testing.T) {
	f := parse(t, "-config", filepath.Join(t.TempDir(), "none.json"), "-scan", "sideways")
	if _, _, err := f.Load(); err == nil {
		t.Error("Expected error for unknown scan mode")
	}
}
