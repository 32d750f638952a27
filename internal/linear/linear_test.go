package linear

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestVecOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub: expected (3,3,3), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", got)
	}
	if got := (Vec3{}).Norm(); got != (Vec3{}) {
		t.Errorf("Norm of zero vector should stay zero, got %v", got)
	}
	if got := V3(3, 0, 4).Norm().Len(); !near(got, 1) {
		t.Errorf("Norm: expected unit length, got %v", got)
	}
}

func TestRotateXYZ(t *testing.T) {
	m := RotateXYZ(V3(0, math.Pi/2, 0))
	got := TransformDir(m, V3(1, 0, 0))
	if !nearVec(got, V3(0, 0, -1)) {
		t.Errorf("Y rotation of +X: expected (0,0,-1), got %v", got)
	}

	m = RotateXYZ(V3(math.Pi/2, 0, 0))
	got = TransformDir(m, V3(0, 1, 0))
	if !nearVec(got, V3(0, 0, 1)) {
		t.Errorf("X rotation of +Y: expected (0,0,1), got %v", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(75, 1, 0.1, 1000)

	for _, tc := range []struct {
		z    float64
		want float64
	}{
		{-0.1, -1},
		{-1000, 1},
	} {
		v, w := TransformPoint(p, V3(0, 0, tc.z))
		if got := v.Z / w; math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("depth at z=%v: expected %v, got %v", tc.z, tc.want, got)
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, 5)
	view := LookAt(eye, Vec3{}, V3(0, 1, 0))

	v, w := TransformPoint(view, eye)
	if !nearVec(v, Vec3{}) || !near(w, 1) {
		t.Errorf("eye should map to origin, got %v w=%v", v, w)
	}

	v, _ = TransformPoint(view, Vec3{})
	if !nearVec(v, V3(0, 0, -5)) {
		t.Errorf("target should sit 5 units down -Z, got %v", v)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul4(ScaleMat(V3(2, 2, 2)))
	if got := Identity().Mul4(m); got != m {
		t.Errorf("I*M should equal M")
	}
	v, _ := TransformPoint(m, V3(1, 1, 1))
	if !nearVec(v, V3(3, 4, 5)) {
		t.Errorf("expected (3,4,5), got %v", v)
	}
}
