package components

import (
	"image/color"

	"spincube/internal/engine"
	"spincube/internal/geometry"
)

// MeshRenderer pairs a shape with a flat, unlit fill colour.
type MeshRenderer struct {
	engine.BaseComponent
	Shape  geometry.Shape
	Color  color.RGBA
	Hidden bool
}

func NewMeshRenderer(shape geometry.Shape, c color.RGBA) *MeshRenderer {
	return &MeshRenderer{
		Shape: shape,
		Color: c,
	}
}

func (m *MeshRenderer) Visible() bool {
	g := m.GetGameObject()
	return g != nil && g.Active && !m.Hidden
}
