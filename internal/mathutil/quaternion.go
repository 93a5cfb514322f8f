package mathutil

import (
	"math"
	"strings"
)

// Quaternion is the hypercomplex number w + i·î + j·ĵ + k·k̂.
//
// Values are immutable in practice: every operation returns a new
// Quaternion and never touches its operands. A Quaternion need not be a
// unit quaternion. The zero value is (0, 0, 0, 0); use Identity for the
// multiplicative identity.
//
// Operations are total. A zero-norm input to Sgn, Inverse or Arg yields
// NaN/Inf components rather than an error.
type Quaternion struct {
	W, I, J, K float64
}

// NewQuaternion stores the components verbatim, without normalization.
func NewQuaternion(w, i, j, k float64) Quaternion {
	return Quaternion{W: w, I: i, J: j, K: k}
}

// Identity returns (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle builds a rotation quaternion from an axis and an angle in
// radians using the half-angle construction. The axis is used as given;
// a non-unit axis yields a non-unit quaternion.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	halfAngle := angle / 2
	sinHalfAngle := math.Sin(halfAngle)
	return Quaternion{
		W: math.Cos(halfAngle),
		I: axis[0] * sinHalfAngle,
		J: axis[1] * sinHalfAngle,
		K: axis[2] * sinHalfAngle,
	}
}

// FromVector3 returns the pure quaternion (0, x, y, z).
func FromVector3(v Vector3) Quaternion {
	return Quaternion{W: 0, I: v[0], J: v[1], K: v[2]}
}

func Add(q1, q2 Quaternion) Quaternion {
	return Quaternion{q1.W + q2.W, q1.I + q2.I, q1.J + q2.J, q1.K + q2.K}
}

func Subtract(q1, q2 Quaternion) Quaternion {
	return Quaternion{q1.W - q2.W, q1.I - q2.I, q1.J - q2.J, q1.K - q2.K}
}

// Multiply returns the Hamilton product q1·q2. It is not commutative.
func Multiply(q1, q2 Quaternion) Quaternion {
	return Quaternion{
		q1.W*q2.W - q1.I*q2.I - q1.J*q2.J - q1.K*q2.K,
		q1.W*q2.I + q1.I*q2.W + q1.J*q2.K - q1.K*q2.J,
		q1.W*q2.J - q1.I*q2.K + q1.J*q2.W + q1.K*q2.I,
		q1.W*q2.K + q1.I*q2.J - q1.J*q2.I + q1.K*q2.W,
	}
}

// Divide returns q1·conj(q2). It does not scale by 1/|q2|², so it equals
// q1·q2⁻¹ only when q2 is a unit quaternion.
func Divide(q1, q2 Quaternion) Quaternion {
	return Multiply(q1, q2.Conjugate())
}

// ScalarProduct returns the 4D dot product of q1 and q2.
func ScalarProduct(q1, q2 Quaternion) float64 {
	return q1.W*q2.W + q1.I*q2.I + q1.J*q2.J + q1.K*q2.K
}

// OuterProduct uses the Hamilton product formula and agrees with Multiply
// bit for bit.
func OuterProduct(q1, q2 Quaternion) Quaternion {
	return Quaternion{
		q1.W*q2.W - q1.I*q2.I - q1.J*q2.J - q1.K*q2.K,
		q1.W*q2.I + q1.I*q2.W + q1.J*q2.K - q1.K*q2.J,
		q1.W*q2.J - q1.I*q2.K + q1.J*q2.W + q1.K*q2.I,
		q1.W*q2.K + q1.I*q2.J - q1.J*q2.I + q1.K*q2.W,
	}
}

// EvenProduct is the Hamilton product with the sign of the cross terms
// flipped, which makes it equal to Multiply(q2, q1).
func EvenProduct(q1, q2 Quaternion) Quaternion {
	return Quaternion{
		q1.W*q2.W - q1.I*q2.I - q1.J*q2.J - q1.K*q2.K,
		q1.W*q2.I + q1.I*q2.W - q1.J*q2.K + q1.K*q2.J,
		q1.W*q2.J + q1.I*q2.K + q1.J*q2.W - q1.K*q2.I,
		q1.W*q2.K - q1.I*q2.J + q1.J*q2.I + q1.K*q2.W,
	}
}

// CrossProduct uses the Hamilton product formula and agrees with Multiply
// bit for bit.
func CrossProduct(q1, q2 Quaternion) Quaternion {
	return Quaternion{
		q1.W*q2.W - q1.I*q2.I - q1.J*q2.J - q1.K*q2.K,
		q1.W*q2.I + q1.I*q2.W + q1.J*q2.K - q1.K*q2.J,
		q1.W*q2.J - q1.I*q2.K + q1.J*q2.W + q1.K*q2.I,
		q1.W*q2.K + q1.I*q2.J - q1.J*q2.I + q1.K*q2.W,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.I, -q.J, -q.K}
}

// Abs returns the Euclidean norm.
func (q Quaternion) Abs() float64 {
	return math.Sqrt(q.W*q.W + q.I*q.I + q.J*q.J + q.K*q.K)
}

// Sgn returns q scaled to unit length.
func (q Quaternion) Sgn() Quaternion {
	abs := q.Abs()
	return Quaternion{q.W / abs, q.I / abs, q.J / abs, q.K / abs}
}

// Inverse returns conj(q)/|q|².
func (q Quaternion) Inverse() Quaternion {
	abs2 := q.Abs() * q.Abs()
	return Quaternion{q.W / abs2, -q.I / abs2, -q.J / abs2, -q.K / abs2}
}

// Arg returns acos(w/|q|) in [0, π]. The ratio is not clamped, so rounding
// past ±1 gives NaN.
func (q Quaternion) Arg() float64 {
	return math.Acos(q.W / q.Abs())
}

// ToVector3 returns (i, j, k), dropping w.
func (q Quaternion) ToVector3() Vector3 {
	return Vector3{q.I, q.J, q.K}
}

// ToEulerAngles returns (roll, pitch, yaw) in radians. The pitch asin
// argument is not clamped; near gimbal lock it may be NaN.
func (q Quaternion) ToEulerAngles() Vector3 {
	roll := math.Atan2(2*(q.W*q.I+q.J*q.K), 1-2*(q.I*q.I+q.J*q.J))
	pitch := math.Asin(2 * (q.W*q.J - q.K*q.I))
	yaw := math.Atan2(2*(q.W*q.K+q.I*q.J), 1-2*(q.J*q.J+q.K*q.K))
	return Vector3{roll, pitch, yaw}
}

// RotateVector embeds v as a pure quaternion and returns the vector part
// of v·conj(q). This is not the sandwich product q·v·conj(q).
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	vq := FromVector3(v)
	result := Multiply(vq, q.Conjugate())
	return Vector3{result.I, result.J, result.K}
}

// MultiplyVector computes the same product as RotateVector.
func (q Quaternion) MultiplyVector(v Vector3) Vector3 {
	qv := Quaternion{0, v[0], v[1], v[2]}
	result := Multiply(qv, q.Conjugate())
	return Vector3{result.I, result.J, result.K}
}

// String renders q as W±|I|i±|J|j±|K|k, e.g. "1+2i-3j+4k".
func (q Quaternion) String() string {
	var sb strings.Builder
	sb.WriteString(formatFloat(q.W))
	for _, c := range [3]struct {
		v    float64
		unit byte
	}{{q.I, 'i'}, {q.J, 'j'}, {q.K, 'k'}} {
		sb.WriteString(sign(c.v))
		sb.WriteString(formatFloat(math.Abs(c.v)))
		sb.WriteByte(c.unit)
	}
	return sb.String()
}

// sign reports "+" for v >= 0 and "-" otherwise (including NaN).
func sign(v float64) string {
	if v >= 0 {
		return "+"
	}
	return "-"
}
