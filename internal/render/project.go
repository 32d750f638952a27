package render

import (
	"image/color"
	"sort"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/linear"
)

// Polygon is a projected mesh face in surface pixel coordinates.
type Polygon struct {
	Points []linear.Vec3 // X, Y in pixels, Z in NDC depth
	Depth  float64
	Color  color.RGBA
}

// Project flattens every visible MeshRenderer in scene into screen-space
// polygons, sorted far to near. Meshes outside the view frustum, back faces
// and faces crossing the near plane are dropped.
func Project(scene *engine.Scene, cam *components.Camera, width, height int) []Polygon {
	vp := cam.ViewProjection()
	eye := cam.Position()
	frustum := ExtractFrustum(vp)

	var polys []Polygon
	for _, d := range scene.Drawables() {
		mesh, ok := d.(*components.MeshRenderer)
		if !ok {
			continue
		}
		g := mesh.GetGameObject()
		model := g.Transform.Matrix()
		if !frustum.ContainsSphere(g.Transform.Position, boundingRadius(mesh)) {
			continue
		}
		mvp := vp.Mul4(model)

	faces:
		for _, f := range mesh.Shape.Faces {
			if len(f.Indices) < 3 {
				continue
			}
			origin, _ := linear.TransformPoint(model, mesh.Shape.Vertices[f.Indices[0]])
			normal := linear.TransformDir(model, f.Normal)
			if normal.Dot(eye.Sub(origin)) <= 0 {
				continue
			}

			p := Polygon{Color: mesh.Color, Points: make([]linear.Vec3, 0, len(f.Indices))}
			for _, idx := range f.Indices {
				clip, w := linear.TransformPoint(mvp, mesh.Shape.Vertices[idx])
				if w <= 0 {
					continue faces
				}
				ndc := clip.Scale(1 / w)
				if ndc.Z < -1 {
					continue faces
				}
				p.Points = append(p.Points, linear.Vec3{
					X: (ndc.X + 1) / 2 * float64(width),
					Y: (1 - ndc.Y) / 2 * float64(height),
					Z: ndc.Z,
				})
				p.Depth += ndc.Z
			}
			p.Depth /= float64(len(p.Points))
			polys = append(polys, p)
		}
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
	return polys
}

// boundingRadius is the radius of a sphere around the mesh origin that
// encloses every scaled vertex.
func boundingRadius(m *components.MeshRenderer) float64 {
	scale := m.GetGameObject().Transform.Scale
	var r float64
	for _, v := range m.Shape.Vertices {
		if l := v.Mul(scale).Len(); l > r {
			r = l
		}
	}
	return r
}
