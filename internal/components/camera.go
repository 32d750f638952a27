package components

import (
	"spincube/internal/engine"
	"spincube/internal/linear"
)

const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Camera is a perspective camera looking from its GameObject's
// position towards Target.
type Camera struct {
	engine.BaseComponent
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Target linear.Vec3
	Up     linear.Vec3
}

func NewCamera(aspect float64) *Camera {
	return &Camera{
		FOV:    DefaultFOV,
		Aspect: aspect,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Up:     linear.V3(0, 1, 0),
	}
}

// Position returns the eye position, or the origin when detached.
func (c *Camera) Position() linear.Vec3 {
	g := c.GetGameObject()
	if g == nil {
		return linear.Vec3{}
	}
	return g.Transform.Position
}

func (c *Camera) View() linear.Mat4 {
	return linear.LookAt(c.Position(), c.Target, c.Up)
}

func (c *Camera) Projection() linear.Mat4 {
	return linear.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewProjection() linear.Mat4 {
	return c.Projection().Mul4(c.View())
}
