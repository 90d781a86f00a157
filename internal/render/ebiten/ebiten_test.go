package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/raycaster/internal/render"
)

func TestIsTypedRepeatTiming(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{32, false},
		{33, true},
		{36, true},
	}
	for _, tt := range tests {
		if got := isTyped(tt.ticks); got != tt.want {
			t.Errorf("isTyped(%d): expected %v, got %v", tt.ticks, tt.want, got)
		}
	}
}

func TestKeyToEbitenKey(t *testing.T) {
	want := map[render.Key]ebiten.Key{
		render.KeyW:      ebiten.KeyW,
		render.KeyA:      ebiten.KeyA,
		render.KeyS:      ebiten.KeyS,
		render.KeyD:      ebiten.KeyD,
		render.KeyQ:      ebiten.KeyQ,
		render.KeyEscape: ebiten.KeyEscape,
	}
	for _, key := range render.AllKeys {
		got := keyToEbitenKey(key)
		if got != want[key] {
			t.Errorf("keyToEbitenKey(%v): expected %v, got %v", key, want[key], got)
		}
	}
	if got := keyToEbitenKey(render.KeyUnknown); got != ebiten.KeyMax {
		t.Errorf("Expected KeyMax for unknown key, got %v", got)
	}
}
