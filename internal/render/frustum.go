package render

import "spincube/internal/linear"

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   linear.Vec3
	distance float64
}

// ExtractFrustum extracts frustum planes from a view-projection matrix
// using the Gribb/Hartmann method.
func ExtractFrustum(vp linear.Mat4) Frustum {
	w, wd := linear.Row(vp, 3)

	var f Frustum
	for i := 0; i < 3; i++ {
		r, rd := linear.Row(vp, i)
		f.planes[2*i] = normalizePlane(Plane{normal: w.Add(r), distance: wd + rd})
		f.planes[2*i+1] = normalizePlane(Plane{normal: w.Sub(r), distance: wd - rd})
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := p.normal.Len()
	if length == 0 {
		return p
	}
	return Plane{
		normal:   p.normal.Scale(1 / length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center linear.Vec3, radius float64) bool {
	for i := range f.planes {
		if f.planes[i].normal.Dot(center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}
