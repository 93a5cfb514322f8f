package raster

import (
	"image"

	"quaternion-go/internal/mathutil"
	"quaternion-go/internal/model"
)

// Orient rotates v by the rotation that q represents, q·v·conj(q) with q
// first scaled to unit length. Unlike Quaternion.RotateVector this is the
// sandwich product, so lengths and angles are preserved.
func Orient(q mathutil.Quaternion, v mathutil.Vector3) mathutil.Vector3 {
	u := q.Sgn()
	return mathutil.Multiply(mathutil.Multiply(u, mathutil.FromVector3(v)), u.Conjugate()).ToVector3()
}

// RenderMeshes renders meshes oriented by q to a size×supersample square
// NRGBA image with an orthographic camera looking down -Z.
//
// The projection scale comes from the model's bounding sphere rather than the
// oriented bounds, so every orientation of the same model frames identically.
func RenderMeshes(meshes []model.Mesh, q mathutil.Quaternion, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)

	radius := model.Radius(meshes)
	if radius < 0.001 {
		return fb.Image()
	}

	margin := float64(8 * supersample)
	half := float64(renderSize) / 2
	scale := (half - margin) / radius

	lc := DefaultLightConfig()
	for _, mesh := range meshes {
		// Orient in view space, then project to screen: x right, y down,
		// z toward the viewer.
		view := make([]mathutil.Vector3, len(mesh.Verts))
		screen := make([]mathutil.Vector3, len(mesh.Verts))
		for i, v := range mesh.Verts {
			o := Orient(q, v)
			view[i] = o
			screen[i] = mathutil.Vector3{half + o[0]*scale, half - o[1]*scale, o[2] * scale}
		}

		for _, tri := range mesh.Tris {
			if !validIndices(tri, len(screen)) {
				continue
			}
			a, b, c := tri.VI[0], tri.VI[1], tri.VI[2]
			n := FaceNormal(view[a], view[b], view[c])
			RasterizeTriangle(fb, screen[a], screen[b], screen[c], n, mesh.Color, &lc)

			// Quad: second triangle
			if tri.Polygon == 4 {
				d := tri.VI[3]
				n := FaceNormal(view[a], view[c], view[d])
				RasterizeTriangle(fb, screen[a], screen[c], screen[d], n, mesh.Color, &lc)
			}
		}
	}

	return fb.Image()
}

func validIndices(tri model.Triangle, n int) bool {
	count := 3
	if tri.Polygon == 4 {
		count = 4
	}
	for _, i := range tri.VI[:count] {
		if i < 0 || int(i) >= n {
			return false
		}
	}
	return true
}
