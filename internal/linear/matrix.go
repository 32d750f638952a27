package linear

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a column-major 4x4 matrix. Points are column vectors: p' = M * p.
type Mat4 = mgl64.Mat4

func Identity() Mat4 {
	return mgl64.Ident4()
}

func Translate(t Vec3) Mat4 {
	return mgl64.Translate3D(t.X, t.Y, t.Z)
}

func ScaleMat(s Vec3) Mat4 {
	return mgl64.Scale3D(s.X, s.Y, s.Z)
}

// RotateXYZ applies X, then Y, then Z rotation (Euler order XYZ), the
// order raylib's MatrixRotateXYZ uses.
func RotateXYZ(r Vec3) Mat4 {
	return mgl64.HomogRotate3DZ(r.Z).
		Mul4(mgl64.HomogRotate3DY(r.Y)).
		Mul4(mgl64.HomogRotate3DX(r.X))
}

// TRS composes translation, rotation and scale into one model matrix.
func TRS(pos, rot, scale Vec3) Mat4 {
	return Translate(pos).Mul4(RotateXYZ(rot)).Mul4(ScaleMat(scale))
}

// Perspective builds a right-handed projection into clip space with depth in [-1, 1].
// fovy is in degrees.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(fovy), aspect, near, far)
}

// LookAt builds a right-handed view matrix.
func LookAt(eye, target, up Vec3) Mat4 {
	return mgl64.LookAtV(eye.Mgl(), target.Mgl(), up.Mgl())
}

// TransformPoint applies m to p with w = 1 and returns the result before
// perspective division along with w.
func TransformPoint(m Mat4, p Vec3) (Vec3, float64) {
	r := m.Mul4x1(p.Mgl().Vec4(1))
	return FromMgl(r.Vec3()), r.W()
}

// TransformDir applies the upper 3x3 of m to d.
func TransformDir(m Mat4, d Vec3) Vec3 {
	return FromMgl(m.Mat3().Mul3x1(d.Mgl()))
}

// Row returns row i of m as a plane (a, b, c) and offset d.
func Row(m Mat4, i int) (Vec3, float64) {
	r := m.Row(i)
	return V3(r[0], r[1], r[2]), r[3]
}
