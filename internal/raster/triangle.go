package raster

import (
	"math"

	"quaternion-go/internal/mathutil"
)

// RasterizeTriangle fills one screen-space triangle with a flat-shaded color,
// testing and writing the z-buffer. Vertices are (x, y, depth) with y down.
// normal is the unit face normal in view space (y up, +z toward the viewer),
// see FaceNormal; screen-space vertices are mirrored in y and cannot be used.
//
// Inner loop does no allocation.
func RasterizeTriangle(fb *FrameBuffer, p0, p1, p2, normal mathutil.Vector3, color [4]uint8, lc *LightConfig) {
	x0, y0, z0 := p0[0], p0[1], p0[2]
	x1, y1, z1 := p1[0], p1[1], p1[2]
	x2, y2, z2 := p2[0], p2[1], p2[2]

	// NaN vertices come from zero-norm orientations; draw nothing.
	if math.IsNaN(x0+y0+z0) || math.IsNaN(x1+y1+z1) || math.IsNaN(x2+y2+z2) {
		return
	}

	if normal == (mathutil.Vector3{}) {
		return
	}
	c := lc.Shade(color, lc.ComputeShade(normal))

	// Bounding box, clipped to the buffer
	minX := int(math.Max(math.Floor(math.Min(math.Min(x0, x1), x2)), 0))
	maxX := int(math.Min(math.Ceil(math.Max(math.Max(x0, x1), x2)), float64(fb.Width-1)))
	minY := int(math.Max(math.Floor(math.Min(math.Min(y0, y1), y2)), 0))
	maxY := int(math.Min(math.Ceil(math.Max(math.Max(y0, y1), y2)), float64(fb.Height-1)))
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = c[0]
			fb.Color[pxIdx+1] = c[1]
			fb.Color[pxIdx+2] = c[2]
			fb.Color[pxIdx+3] = c[3]
		}
	}
}

// FaceNormal returns the unit normal of triangle (a, b, c) given in view
// space, flipped if needed so it faces the viewer (+z). Faces are drawn
// double-sided, so winding only matters for degenerate triangles, which
// return the zero vector.
func FaceNormal(a, b, c mathutil.Vector3) mathutil.Vector3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return mathutil.Vector3{}
	}
	n = n.Normalize()
	if n[2] < 0 {
		n = n.Scale(-1)
	}
	return n
}
