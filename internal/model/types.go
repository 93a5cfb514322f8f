package model

import "quaternion-go/internal/mathutil"

// Triangle holds polygon type and vertex indices into Mesh.Verts.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int16
}

// Mesh is a flat-colored piece of geometry in model space, centered on the origin.
type Mesh struct {
	Name  string
	Verts []mathutil.Vector3
	Tris  []Triangle
	Color [4]uint8 // sRGB + alpha
}

// Radius returns the distance from the origin to the farthest vertex of any mesh.
func Radius(meshes []Mesh) float64 {
	var r float64
	for _, m := range meshes {
		for _, v := range m.Verts {
			if l := v.Len(); l > r {
				r = l
			}
		}
	}
	return r
}
