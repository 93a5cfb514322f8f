package model

import (
	"fmt"

	"quaternion-go/internal/mathutil"
)

// Names lists the built-in models accepted by ByName.
var Names = []string{"cube", "axes"}

// ByName returns a fresh copy of a built-in model.
func ByName(name string) ([]Mesh, error) {
	switch name {
	case "cube":
		return Cube(), nil
	case "axes":
		return Axes(), nil
	}
	return nil, fmt.Errorf("model: unknown model %q (want one of %v)", name, Names)
}

// Cube returns a unit cube with one mesh per face, each face colored so the
// orientation is readable: ±X red, ±Y green, ±Z blue, negative faces darker.
func Cube() []Mesh {
	type face struct {
		name   string
		normal mathutil.Vector3
		color  [4]uint8
	}
	faces := []face{
		{"+x", mathutil.Vector3{1, 0, 0}, [4]uint8{220, 60, 50, 255}},
		{"-x", mathutil.Vector3{-1, 0, 0}, [4]uint8{110, 30, 25, 255}},
		{"+y", mathutil.Vector3{0, 1, 0}, [4]uint8{70, 200, 80, 255}},
		{"-y", mathutil.Vector3{0, -1, 0}, [4]uint8{35, 100, 40, 255}},
		{"+z", mathutil.Vector3{0, 0, 1}, [4]uint8{60, 110, 230, 255}},
		{"-z", mathutil.Vector3{0, 0, -1}, [4]uint8{30, 55, 115, 255}},
	}

	meshes := make([]Mesh, 0, len(faces))
	for _, f := range faces {
		meshes = append(meshes, Mesh{
			Name:  f.name,
			Verts: faceQuad(f.normal, 0.5),
			Tris:  []Triangle{{Polygon: 4, VI: [4]int16{0, 1, 2, 3}}},
			Color: f.color,
		})
	}
	return meshes
}

// Axes returns three slim boxes along +X (red), +Y (green) and +Z (blue)
// joined by a small grey hub at the origin.
func Axes() []Mesh {
	const length, half = 1.0, 0.06
	return []Mesh{
		box("hub", mathutil.Vector3{-half * 2, -half * 2, -half * 2}, mathutil.Vector3{half * 2, half * 2, half * 2}, [4]uint8{180, 180, 180, 255}),
		box("x", mathutil.Vector3{0, -half, -half}, mathutil.Vector3{length, half, half}, [4]uint8{220, 60, 50, 255}),
		box("y", mathutil.Vector3{-half, 0, -half}, mathutil.Vector3{half, length, half}, [4]uint8{70, 200, 80, 255}),
		box("z", mathutil.Vector3{-half, -half, 0}, mathutil.Vector3{half, half, length}, [4]uint8{60, 110, 230, 255}),
	}
}

// faceQuad returns the four corners of the cube face with the given outward
// axis-aligned normal, at distance d from the origin.
func faceQuad(n mathutil.Vector3, d float64) []mathutil.Vector3 {
	// Two in-plane axes u, v with u × v = n.
	var u mathutil.Vector3
	switch {
	case n[0] != 0:
		u = mathutil.Vector3{0, 1, 0}
	case n[1] != 0:
		u = mathutil.Vector3{0, 0, 1}
	default:
		u = mathutil.Vector3{1, 0, 0}
	}
	v := n.Cross(u)
	c := n.Scale(d)
	return []mathutil.Vector3{
		c.Sub(u.Scale(d)).Sub(v.Scale(d)),
		c.Add(u.Scale(d)).Sub(v.Scale(d)),
		c.Add(u.Scale(d)).Add(v.Scale(d)),
		c.Sub(u.Scale(d)).Add(v.Scale(d)),
	}
}

func box(name string, lo, hi mathutil.Vector3, color [4]uint8) Mesh {
	verts := make([]mathutil.Vector3, 8)
	for i := range verts {
		for k := 0; k < 3; k++ {
			if i&(1<<k) != 0 {
				verts[i][k] = hi[k]
			} else {
				verts[i][k] = lo[k]
			}
		}
	}
	// Corner index bits: 1 = x, 2 = y, 4 = z.
	quads := [6][4]int16{
		{0, 2, 6, 4}, // -x
		{1, 5, 7, 3}, // +x
		{0, 4, 5, 1}, // -y
		{2, 3, 7, 6}, // +y
		{0, 1, 3, 2}, // -z
		{4, 6, 7, 5}, // +z
	}
	tris := make([]Triangle, len(quads))
	for i, q := range quads {
		tris[i] = Triangle{Polygon: 4, VI: q}
	}
	return Mesh{Name: name, Verts: verts, Tris: tris, Color: color}
}
