package raster

import (
	"image/color"
	"math"
	"testing"

	"quaternion-go/internal/mathutil"
	"quaternion-go/internal/model"
)

func vecApproxEq(a, b mathutil.Vector3, tol float64) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(a[k]-b[k]) > tol {
			return false
		}
	}
	return true
}

func TestOrientQuarterTurn(t *testing.T) {
	q := mathutil.FromAxisAngle(mathutil.Vector3{0, 0, 1}, math.Pi/2)
	if got := Orient(q, mathutil.Vector3{1, 0, 0}); !vecApproxEq(got, mathutil.Vector3{0, 1, 0}, 1e-12) {
		t.Fatalf("z quarter turn of x = %v, want (0, 1, 0)", got)
	}

	q = mathutil.FromAxisAngle(mathutil.Vector3{0, 1, 0}, math.Pi/2)
	if got := Orient(q, mathutil.Vector3{1, 0, 0}); !vecApproxEq(got, mathutil.Vector3{0, 0, -1}, 1e-12) {
		t.Fatalf("y quarter turn of x = %v, want (0, 0, -1)", got)
	}
}

func TestOrientIgnoresScale(t *testing.T) {
	v := mathutil.Vector3{0.3, -1.2, 2}
	q := mathutil.NewQuaternion(1, 2, -0.5, 0.25)
	scaled := mathutil.NewQuaternion(3, 6, -1.5, 0.75)

	got := Orient(scaled, v)
	if !vecApproxEq(got, Orient(q, v), 1e-12) {
		t.Fatalf("Orient depends on |q|: %v vs %v", got, Orient(q, v))
	}
	if math.Abs(got.Len()-v.Len()) > 1e-12 {
		t.Fatalf("Orient changed length: %v -> %v", v.Len(), got.Len())
	}
}

func TestRenderMeshesFacingFace(t *testing.T) {
	tests := []struct {
		name string
		q    mathutil.Quaternion
		// channel that should dominate the center pixel
		channel int
	}{
		{"identity shows +z", mathutil.Identity(), 2},
		{"y quarter turn shows -x", mathutil.FromAxisAngle(mathutil.Vector3{0, 1, 0}, math.Pi/2), 0},
		{"x quarter turn shows +y", mathutil.FromAxisAngle(mathutil.Vector3{1, 0, 0}, math.Pi/2), 1},
	}
	for _, tt := range tests {
		img := RenderMeshes(model.Cube(), tt.q, 32, 2)
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
			t.Fatalf("%s: image is %v, want 64x64", tt.name, b)
		}

		c := img.NRGBAAt(32, 32)
		if c.A != 255 {
			t.Fatalf("%s: center pixel not opaque: %v", tt.name, c)
		}
		ch := [3]uint8{c.R, c.G, c.B}
		for k := 0; k < 3; k++ {
			if k != tt.channel && ch[k] >= ch[tt.channel] {
				t.Errorf("%s: center pixel %v, want channel %d dominant", tt.name, c, tt.channel)
				break
			}
		}

		if corner := img.NRGBAAt(0, 0); corner != (color.NRGBA{}) {
			t.Errorf("%s: corner pixel %v, want transparent", tt.name, corner)
		}
	}
}

func TestRenderMeshesZeroQuaternionIsBlank(t *testing.T) {
	img := RenderMeshes(model.Cube(), mathutil.Quaternion{}, 16, 1)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("pixel %d drawn for zero quaternion", i/4)
		}
	}
}

func TestFaceNormalFacesViewer(t *testing.T) {
	lc := DefaultLightConfig()
	for _, face := range model.Cube() {
		if face.Name != "+z" && face.Name != "-z" {
			continue
		}
		// Identity orientation: the +z face looks at the camera; the -z
		// face looks away but is drawn double-sided.
		v := face.Verts
		n := FaceNormal(v[0], v[1], v[2])
		if !vecApproxEq(n, mathutil.Vector3{0, 0, 1}, 1e-12) {
			t.Fatalf("face %s normal = %v, want (0, 0, 1)", face.Name, n)
		}
		if d := n.Dot(lc.HalfMain); d <= 0 {
			t.Fatalf("face %s: n·HalfMain = %v, want > 0", face.Name, d)
		}
	}
}

func TestFaceNormalKeepsLightSide(t *testing.T) {
	// A face tilted toward +y (where the key light sits) must keep a
	// positive y normal after orientation.
	q := mathutil.FromAxisAngle(mathutil.Vector3{1, 0, 0}, -math.Pi/4)
	var v [3]mathutil.Vector3
	for i, p := range []mathutil.Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
		v[i] = Orient(q, p)
	}
	n := FaceNormal(v[0], v[1], v[2])
	if n[1] <= 0 || n[2] <= 0 {
		t.Fatalf("normal = %v, want +y and +z components", n)
	}
}

func TestSpecularReachesViewerFacingFace(t *testing.T) {
	lc := DefaultLightConfig()
	n := mathutil.Vector3{0, 0, 1}
	withSpec := lc.ComputeShade(n)
	lc.SpecInt = 0
	if base := lc.ComputeShade(n); withSpec <= base {
		t.Fatalf("specular adds nothing: %v vs %v", withSpec, base)
	}
}
