package model

import (
	"math"
	"testing"
)

func TestCubeFacesPointOutward(t *testing.T) {
	meshes := Cube()
	if len(meshes) != 6 {
		t.Fatalf("Cube() has %d meshes, want 6", len(meshes))
	}
	for _, m := range meshes {
		if len(m.Verts) != 4 || len(m.Tris) != 1 || m.Tris[0].Polygon != 4 {
			t.Fatalf("face %s: %d verts, %d tris", m.Name, len(m.Verts), len(m.Tris))
		}
		e1 := m.Verts[1].Sub(m.Verts[0])
		e2 := m.Verts[2].Sub(m.Verts[0])
		n := e1.Cross(e2)
		center := m.Verts[0].Add(m.Verts[2]).Scale(0.5)
		if n.Dot(center) <= 0 {
			t.Errorf("face %s winds inward: normal %v, center %v", m.Name, n, center)
		}
		for _, v := range m.Verts {
			for k := 0; k < 3; k++ {
				if math.Abs(v[k]) != 0.5 {
					t.Fatalf("face %s vertex %v off the unit cube", m.Name, v)
				}
			}
		}
	}
	if r := Radius(meshes); math.Abs(r-math.Sqrt(0.75)) > 1e-12 {
		t.Fatalf("Radius = %v", r)
	}
}

func TestAxesReachUnitLength(t *testing.T) {
	meshes := Axes()
	if len(meshes) != 4 {
		t.Fatalf("Axes() has %d meshes, want 4", len(meshes))
	}
	for _, m := range meshes {
		if len(m.Verts) != 8 || len(m.Tris) != 6 {
			t.Fatalf("box %s: %d verts, %d tris", m.Name, len(m.Verts), len(m.Tris))
		}
	}
	if r := Radius(meshes); r < 1 || r > 1.01 {
		t.Fatalf("Radius = %v, want just over 1", r)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("teapot"); err == nil {
		t.Fatal("ByName(teapot) should fail")
	}
}
