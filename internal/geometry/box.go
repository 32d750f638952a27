// Package geometry holds mesh shape descriptors shared by the renderers.
package geometry

import (
	"fmt"

	"spincube/internal/linear"
)

// KindBox is the Shape.Kind of shapes built by Box.
const KindBox = "box"

// Face is a planar polygon indexing into Shape.Vertices, wound
// counter-clockwise when viewed from outside.
type Face struct {
	Indices []int
	Normal  linear.Vec3
}

// Shape is a polygon mesh in object space.
type Shape struct {
	Kind     string
	Size     linear.Vec3
	Vertices []linear.Vec3
	Faces    []Face
}

// Box returns an axis-aligned box of the given size centred on the origin.
func Box(width, height, depth float64) (Shape, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return Shape{}, fmt.Errorf("geometry: invalid box size %vx%vx%v", width, height, depth)
	}
	x, y, z := width/2, height/2, depth/2

	return Shape{
		Kind: KindBox,
		Size: linear.V3(width, height, depth),
		Vertices: []linear.Vec3{
			{X: -x, Y: -y, Z: -z}, // 0
			{X: x, Y: -y, Z: -z},  // 1
			{X: x, Y: y, Z: -z},   // 2
			{X: -x, Y: y, Z: -z},  // 3
			{X: -x, Y: -y, Z: z},  // 4
			{X: x, Y: -y, Z: z},   // 5
			{X: x, Y: y, Z: z},    // 6
			{X: -x, Y: y, Z: z},   // 7
		},
		Faces: []Face{
			{Indices: []int{4, 5, 6, 7}, Normal: linear.V3(0, 0, 1)},
			{Indices: []int{1, 0, 3, 2}, Normal: linear.V3(0, 0, -1)},
			{Indices: []int{5, 1, 2, 6}, Normal: linear.V3(1, 0, 0)},
			{Indices: []int{0, 4, 7, 3}, Normal: linear.V3(-1, 0, 0)},
			{Indices: []int{7, 6, 2, 3}, Normal: linear.V3(0, 1, 0)},
			{Indices: []int{0, 1, 5, 4}, Normal: linear.V3(0, -1, 0)},
		},
	}, nil
}

// UnitCube is Box(1, 1, 1).
func UnitCube() Shape {
	s, _ := Box(1, 1, 1)
	return s
}
