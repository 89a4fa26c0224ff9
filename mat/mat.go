/*
3x3 matrices on top of the vec package, stored as three row vectors.
Vectors transform as v' = Transform(v, m), one dot product per row, so
Transform(v, Mul(a, b)) equals Transform(Transform(v, b), a).
*/

package mat

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/xernobyl/spatial3/vec"
)

type Mat3 [3]vec.Vec3

func New(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Mat3 {
	return Mat3{
		vec.Vec3{m00, m01, m02},
		vec.Vec3{m10, m11, m12},
		vec.Vec3{m20, m21, m22},
	}
}

func FromRows(r0, r1, r2 vec.Vec3) Mat3 {
	return Mat3{r0, r1, r2}
}

func Identity() Mat3 {
	return Mat3{
		vec.Vec3{1.0, 0.0, 0.0},
		vec.Vec3{0.0, 1.0, 0.0},
		vec.Vec3{0.0, 0.0, 1.0},
	}
}

func Transpose(m Mat3) Mat3 {
	return Mat3{
		vec.Vec3{m[0][0], m[1][0], m[2][0]},
		vec.Vec3{m[0][1], m[1][1], m[2][1]},
		vec.Vec3{m[0][2], m[1][2], m[2][2]},
	}
}

func Scale(m Mat3, s float32) Mat3 {
	return Mat3{vec.Scale(m[0], s), vec.Scale(m[1], s), vec.Scale(m[2], s)}
}

func Mul(a, b Mat3) Mat3 {
	t := Transpose(b)

	return Mat3{
		vec.Vec3{vec.Dot(a[0], t[0]), vec.Dot(a[0], t[1]), vec.Dot(a[0], t[2])},
		vec.Vec3{vec.Dot(a[1], t[0]), vec.Dot(a[1], t[1]), vec.Dot(a[1], t[2])},
		vec.Vec3{vec.Dot(a[2], t[0]), vec.Dot(a[2], t[1]), vec.Dot(a[2], t[2])},
	}
}

// Transform applies m to v as a row vector: one dot product per row.
func Transform(v vec.Vec3, m Mat3) vec.Vec3 {
	return vec.Vec3{vec.Dot(v, m[0]), vec.Dot(v, m[1]), vec.Dot(v, m[2])}
}

func Determinant(m Mat3) float32 {
	return vec.Dot(m[0], vec.Cross(m[1], m[2]))
}

// Invert returns Identity for singular matrices. The adjugate columns are
// the cross products of the row pairs, so the whole thing stays in vec ops.
func Invert(m Mat3) Mat3 {
	d := Determinant(m)
	if d == 0.0 {
		return Identity()
	}

	adjugate := Transpose(Mat3{
		vec.Cross(m[1], m[2]),
		vec.Cross(m[2], m[0]),
		vec.Cross(m[0], m[1]),
	})

	return Scale(adjugate, 1.0/d)
}

/*
Head, pitch and roll in radians, composed in that fixed order.
EulerRotation(0, 0, 0) is the identity.
*/
func EulerRotation(head, pitch, roll float32) Mat3 {
	sinH, cosH := math32.Sincos(head)
	sinP, cosP := math32.Sincos(pitch)
	sinR, cosR := math32.Sincos(roll)

	return Mat3{
		vec.Vec3{cosR*cosH - sinR*sinP*sinH, -sinR * cosP, cosR*sinH + sinR*sinP*cosH},
		vec.Vec3{sinR*cosH + cosR*sinP*sinH, cosR * cosP, sinR*sinH - cosR*sinP*cosH},
		vec.Vec3{-cosP * sinH, sinP, cosP * cosH},
	}
}

func RotX(a float32) Mat3 {
	sin, cos := math32.Sincos(a)

	return Mat3{
		vec.Vec3{1.0, 0.0, 0.0},
		vec.Vec3{0.0, cos, -sin},
		vec.Vec3{0.0, sin, cos},
	}
}

func RotY(a float32) Mat3 {
	sin, cos := math32.Sincos(a)

	return Mat3{
		vec.Vec3{cos, 0.0, sin},
		vec.Vec3{0.0, 1.0, 0.0},
		vec.Vec3{-sin, 0.0, cos},
	}
}

func RotZ(a float32) Mat3 {
	sin, cos := math32.Sincos(a)

	return Mat3{
		vec.Vec3{cos, -sin, 0.0},
		vec.Vec3{sin, cos, 0.0},
		vec.Vec3{0.0, 0.0, 1.0},
	}
}

// String formats the rows to 2 decimal places, one row per line.
func (m Mat3) String() string {
	return fmt.Sprintf("%v\n%v\n%v", m[0], m[1], m[2])
}
