package rlnative

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spincube/internal/components"
	"spincube/internal/linear"
)

func toVector3(v linear.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toCamera carries the eye, target and field of view across. Aspect comes
// from the window, which New sizes to the surface. raylib keeps its own
// near and far planes (rlgl's cull distances), so Near and
// Far only apply to the software path.
func toCamera(cam *components.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position()),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       float32(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}
