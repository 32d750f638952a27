package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Viewport.Width != 1000 || cfg.Viewport.Height != 1000 {
		t.Errorf("Expected 1000x1000 viewport, got %+v", cfg.Viewport)
	}
	if cfg.Camera.FOV != 75 || cfg.Camera.Distance != 5 {
		t.Errorf("Unexpected camera defaults %+v", cfg.Camera)
	}
}

func TestNormalizeFallsBack(t *testing.T) {
	tests := []struct {
		name string
		in   Viewport
		want Viewport
	}{
		{"zero", Viewport{}, Viewport{1000, 1000}},
		{"negative", Viewport{-1, 300}, Viewport{1000, 1000}},
		{"height only", Viewport{640, 0}, Viewport{1000, 1000}},
		{"explicit", Viewport{640, 480}, Viewport{640, 480}},
	}
	for _, tt := range tests {
		cfg := Config{Viewport: tt.in}
		cfg.Normalize()
		if cfg.Viewport != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, cfg.Viewport)
		}
	}
}

func TestNormalizeZeroConfig(t *testing.T) {
	var cfg Config
	cfg.Normalize()
	if cfg != Default() {
		t.Errorf("Expected zero config to normalize to defaults, got %+v", cfg)
	}

	cfg = Config{Cube: Cube{Step: [3]float64{0, 0, 0.02}}}
	cfg.Normalize()
	if cfg.Cube.Step != [3]float64{0, 0, 0.02} {
		t.Errorf("Expected explicit step kept, got %v", cfg.Cube.Step)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	data := `{"viewport":{"width":800,"height":600},"cube":{"color":"#ff0000"},"backend":"png"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Viewport != (Viewport{800, 600}) {
		t.Errorf("Expected 800x600, got %+v", cfg.Viewport)
	}
	if cfg.Backend != "png" || cfg.Cube.Color != "#ff0000" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.Camera.FOV != 75 || cfg.Cube.Size != 1 {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"backend":"opengl"}`), 0o644)
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown backend, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	green := color.RGBA{G: 0xff, A: 0xff}
	for _, s := range []string{"lime", "Lime", "#00ff00", "0x00FF00", "00ff00"} {
		got, err := ParseColor(s)
		if err != nil || got != green {
			t.Errorf("ParseColor(%q) = %v, %v", s, got, err)
		}
	}
	for _, s := range []string{"", "#0f0f", "nocolour", "#gg0000"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseColor(%q): expected ErrInvalid, got %v", s, err)
		}
	}
}
