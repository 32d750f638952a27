// Package config holds the settings for a spinning cube scene.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"spincube/internal/logging"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
	DefaultColor  = "lime" // 0x00ff00
)

var ErrInvalid = errors.New("config: invalid")

type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Camera struct {
	FOV      float64 `json:"fov"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Distance float64 `json:"distance"`
}

type Cube struct {
	Size  float64    `json:"size"`
	Color string     `json:"color"`
	Step  [3]float64 `json:"step"`
}

type Loop struct {
	FPS    int    `json:"fps"`
	Frames uint64 `json:"frames,omitempty"`
}

type Config struct {
	Viewport Viewport `json:"viewport"`
	Camera   Camera   `json:"camera"`
	Cube     Cube     `json:"cube"`
	Loop     Loop     `json:"loop"`
	Backend  string   `json:"backend"`
	OutDir   string   `json:"outDir,omitempty"`
}

func Default() Config {
	return Config{
		Viewport: Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Camera:   Camera{FOV: 75, Near: 0.1, Far: 1000, Distance: 5},
		Cube:     Cube{Size: 1, Color: DefaultColor, Step: [3]float64{0.01, 0.01, 0}},
		Loop:     Loop{FPS: 60},
		Backend:  "raylib",
	}
}

// Load reads a JSON config over the defaults. Missing fields keep their
// default values; an empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// Normalize replaces zero or unusable values with defaults.
func (c *Config) Normalize() {
	d := Default()
	log := logging.Logger()

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		if c.Viewport != (Viewport{}) {
			log.Warn("viewport size unusable, falling back to default",
				"width", c.Viewport.Width, "height", c.Viewport.Height)
		}
		c.Viewport = d.Viewport
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		c.Camera.FOV = d.Camera.FOV
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = d.Camera.Near
	}
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Far = d.Camera.Far
	}
	if c.Camera.Distance <= 0 {
		c.Camera.Distance = d.Camera.Distance
	}
	if c.Cube.Size <= 0 {
		c.Cube.Size = d.Cube.Size
	}
	if c.Cube.Color == "" {
		c.Cube.Color = d.Cube.Color
	}
	// An all-zero step would leave the cube still.
	if c.Cube.Step == ([3]float64{}) {
		c.Cube.Step = d.Cube.Step
	}
	if c.Loop.FPS <= 0 {
		c.Loop.FPS = d.Loop.FPS
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
}

func (c Config) Validate() error {
	if _, err := ParseColor(c.Cube.Color); err != nil {
		return err
	}
	switch c.Backend {
	case "raylib", "ebiten", "png":
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Camera.Distance <= c.Camera.Near {
		return fmt.Errorf("%w: camera distance %v inside near plane %v", ErrInvalid, c.Camera.Distance, c.Camera.Near)
	}
	return nil
}

// ParseColor accepts an SVG colour name ("lime") or hex ("#00ff00", "0x00ff00").
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
