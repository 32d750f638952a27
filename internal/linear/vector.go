// Package linear holds the float64 vector and matrix types the scene graph
// and renderers share. Matrices are mgl64 matrices (column-major, column
// vectors); Vec3 keeps named fields so transforms and scene files stay
// readable.
package linear

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3-component vector.
// Rotation vectors hold Euler angles in radians.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromMgl converts an mgl64 vector.
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Mgl converts v to an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return FromMgl(v.Mgl().Add(w.Mgl()))
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return FromMgl(v.Mgl().Sub(w.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return FromMgl(v.Mgl().Mul(s))
}

// Mul multiplies component-wise.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.Mgl().Dot(w.Mgl())
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return FromMgl(v.Mgl().Cross(w.Mgl()))
}

func (v Vec3) Len() float64 {
	return v.Mgl().Len()
}

// Norm returns v scaled to unit length, or the zero vector if v has no length.
func (v Vec3) Norm() Vec3 {
	if v == (Vec3{}) {
		return Vec3{}
	}
	return FromMgl(v.Mgl().Normalize())
}

// Array returns v as a fixed-size array, the layout used by scene files.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
