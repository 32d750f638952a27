package soft

import (
	"errors"
	"sync"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/geometry"
	"spincube/internal/linear"
	"spincube/internal/render"
)

var green = color.RGBA{G: 0xff, A: 0xff}

func cubeScene() (*engine.Scene, *components.Camera) {
	scene := engine.NewScene("Test")

	camObj := engine.NewGameObject("Camera")
	camObj.Transform.Position = linear.V3(0, 0, 5)
	cam := components.NewCamera(1)
	camObj.AddComponent(cam)
	scene.AddGameObject(camObj)

	cube := engine.NewGameObject("Cube")
	cube.AddComponent(components.NewMeshRenderer(geometry.UnitCube(), green))
	scene.AddGameObject(cube)

	return scene, cam
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderFillsCube(t *testing.T) {
	r, err := New(200, 200, Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.Frame() != nil {
		t.Error("Frame should be nil before the first render")
	}

	scene, cam := cubeScene()
	if err := r.Render(scene, cam); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := r.Frame()
	if img == nil {
		t.Fatal("Frame is nil after render")
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("Expected 200x200 frame, got %v", b)
	}
	if got := rgba(img.At(100, 100)); got != green {
		t.Errorf("Centre pixel: expected %v, got %v", green, got)
	}
	if got := rgba(img.At(5, 5)); got != render.Background {
		t.Errorf("Corner pixel: expected background, got %v", got)
	}
}

func TestRenderWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r, err := New(64, 64, Options{OutDir: dir, Every: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	scene, cam := cubeScene()
	for i := 0; i < 4; i++ {
		if err := r.Render(scene, cam); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 frames written, got %d", len(entries))
	}
	if entries[0].Name() != "frame-000002.png" || entries[1].Name() != "frame-000004.png" {
		t.Errorf("Unexpected frame names %q, %q", entries[0].Name(), entries[1].Name())
	}
	if r.Frames() != 4 {
		t.Errorf("Expected 4 frames rendered, got %d", r.Frames())
	}
}

func TestRenderAfterClose(t *testing.T) {
	r, _ := New(10, 10, Options{})
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	scene, cam := cubeScene()
	if err := r.Render(scene, cam); !errors.Is(err, render.ErrSurfaceClosed) {
		t.Errorf("Expected ErrSurfaceClosed, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	if _, err := New(0, 10, Options{}); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestFramesReadableWhileRendering(t *testing.T) {
	r, err := New(64, 64, Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	scene, cam := cubeScene()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			if err := r.Render(scene, cam); err != nil {
				t.Errorf("Render: %v", err)
				return
			}
		}
	}()
	var last uint64
	for last < 5 {
		n := r.Frames()
		if n < last {
			t.Fatalf("frame count went backwards: %d after %d", n, last)
		}
		last = n
		if t.Failed() {
			break
		}
	}
	wg.Wait()

	if r.Frames() != 5 {
		t.Errorf("Expected 5 frames, got %d", r.Frames())
	}
}
