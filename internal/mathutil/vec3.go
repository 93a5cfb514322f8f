package mathutil

import (
	"math"
	"strconv"
)

// Vector3 is a point or direction in 3D space (value type, stack-allocated).
// Components are ordered x, y, z.
type Vector3 [3]float64

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vector3) Dot(b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vector3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns the unit vector, or the zero vector when v is (near) zero.
func (v Vector3) Normalize() Vector3 {
	l := v.Len()
	if l < 1e-12 {
		return Vector3{}
	}
	return Vector3{v[0] / l, v[1] / l, v[2] / l}
}

// String renders the vector as (x, y, z).
func (v Vector3) String() string {
	return "(" + formatFloat(v[0]) + ", " + formatFloat(v[1]) + ", " + formatFloat(v[2]) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
