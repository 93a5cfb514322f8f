package mathutil

import "math"

// FromEulerAngles converts (roll, pitch, yaw) in radians to a unit
// quaternion, applying yaw about Z, then pitch about Y, then roll about X.
// It inverts ToEulerAngles for pitch strictly inside (-π/2, π/2).
func FromEulerAngles(e Vector3) Quaternion {
	cr, sr := math.Cos(e[0]*0.5), math.Sin(e[0]*0.5)
	cp, sp := math.Cos(e[1]*0.5), math.Sin(e[1]*0.5)
	cy, sy := math.Cos(e[2]*0.5), math.Sin(e[2]*0.5)

	return Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		I: sr*cp*cy - cr*sp*sy,
		J: cr*sp*cy + sr*cp*sy,
		K: cr*cp*sy - sr*sp*cy,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
