package render

import (
	"testing"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/linear"
)

func testFrustum() Frustum {
	g := engine.NewGameObject("Camera")
	g.Transform.Position = linear.V3(0, 0, 5)
	cam := components.NewCamera(1)
	g.AddComponent(cam)
	return ExtractFrustum(cam.ViewProjection())
}

func TestFrustumZeroRadiusSphere(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name string
		p    linear.Vec3
		want bool
	}{
		{"origin", linear.Vec3{}, true},
		{"behind camera", linear.V3(0, 0, 6), false},
		{"inside near plane", linear.V3(0, 0, 4.95), false},
		{"beyond far plane", linear.V3(0, 0, -1000), false},
		{"far left", linear.V3(-100, 0, 0), false},
		{"far up", linear.V3(0, 100, 0), false},
	}
	for _, tt := range tests {
		if got := f.ContainsSphere(tt.p, 0); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	f := testFrustum()

	// Half-width of the view at the origin is 5 * tan(37.5deg) ~= 3.84.
	if !f.ContainsSphere(linear.V3(4.5, 0, 0), 1) {
		t.Error("sphere straddling the right plane should be kept")
	}
	if f.ContainsSphere(linear.V3(10, 0, 0), 1) {
		t.Error("sphere well outside the right plane should be culled")
	}
}

func TestProjectCullsOffscreenMesh(t *testing.T) {
	scene, cam := cubeScene(linear.Vec3{})
	scene.FindByName("Cube").Transform.Position = linear.V3(50, 0, 0)

	if got := Project(scene, cam, 100, 100); len(got) != 0 {
		t.Errorf("Offscreen cube should be culled, got %d polygons", len(got))
	}
}
