package render

import (
	"image/color"
	"math"
	"testing"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/geometry"
	"spincube/internal/linear"
)

var green = color.RGBA{G: 0xff, A: 0xff}

func cubeScene(rot linear.Vec3) (*engine.Scene, *components.Camera) {
	scene := engine.NewScene("Test")

	camObj := engine.NewGameObject("Camera")
	camObj.Transform.Position = linear.V3(0, 0, 5)
	cam := components.NewCamera(1)
	camObj.AddComponent(cam)
	scene.AddGameObject(camObj)

	cube := engine.NewGameObject("Cube")
	cube.Transform.Rotation = rot
	cube.AddComponent(components.NewMeshRenderer(geometry.UnitCube(), green))
	scene.AddGameObject(cube)

	return scene, cam
}

func TestProjectFrontFaceOnly(t *testing.T) {
	scene, cam := cubeScene(linear.Vec3{})

	polys := Project(scene, cam, 1000, 1000)
	if len(polys) != 1 {
		t.Fatalf("Expected only the front face, got %d polygons", len(polys))
	}

	p := polys[0]
	if p.Color != green {
		t.Errorf("Expected flat green fill, got %v", p.Color)
	}

	// Front face sits 4.5 units away: half-width = 0.5 / tan(37.5deg) / 4.5 in NDC.
	half := 0.5 / math.Tan(37.5*math.Pi/180) / 4.5 * 500
	for _, pt := range p.Points {
		if math.Abs(math.Abs(pt.X-500)-half) > 1e-6 || math.Abs(math.Abs(pt.Y-500)-half) > 1e-6 {
			t.Errorf("Unexpected projected corner %v (half-size %v)", pt, half)
		}
	}
}

func TestProjectRotatedShowsSeveralFaces(t *testing.T) {
	scene, cam := cubeScene(linear.V3(1, 1, 0))

	polys := Project(scene, cam, 800, 600)
	if len(polys) < 2 || len(polys) > 3 {
		t.Fatalf("Expected 2-3 visible faces, got %d", len(polys))
	}
	for i := 1; i < len(polys); i++ {
		if polys[i-1].Depth < polys[i].Depth {
			t.Errorf("Polygons not sorted far to near at %d", i)
		}
	}
}

func TestProjectSkipsHiddenMesh(t *testing.T) {
	scene, cam := cubeScene(linear.Vec3{})
	mesh := engine.GetComponent[*components.MeshRenderer](scene.FindByName("Cube"))
	mesh.Hidden = true

	if got := Project(scene, cam, 100, 100); len(got) != 0 {
		t.Errorf("Expected nothing to draw, got %d polygons", len(got))
	}
}

func TestProjectBehindCamera(t *testing.T) {
	scene, cam := cubeScene(linear.Vec3{})
	scene.FindByName("Cube").Transform.Position = linear.V3(0, 0, 10)

	if got := Project(scene, cam, 100, 100); len(got) != 0 {
		t.Errorf("Cube behind camera should not be drawn, got %d polygons", len(got))
	}
}
