package kinematics

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Digits kept by each axis primitive. RotZ keeps more precision than the others.
const (
	rotZDigits = 5
	axisDigits = 2
)

// Transform is a 4x4 homogeneous transformation: a 3x3 rotation, a translation column,
// and a [0 0 0 1] bottom row.
type Transform struct {
	mat mgl64.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{mgl64.Ident4()}
}

// NewTransformFromMatrix wraps an existing matrix.
func NewTransformFromMatrix(m mgl64.Mat4) Transform {
	return Transform{m}
}

// Matrix returns a copy of the underlying matrix.
func (t Transform) Matrix() mgl64.Mat4 {
	return t.mat
}

// At returns the element at row r, column c.
func (t Transform) At(r, c int) float64 {
	return t.mat.At(r, c)
}

// Mul returns t·o.
func (t Transform) Mul(o Transform) Transform {
	return Transform{t.mat.Mul4(o.mat)}
}

// Rotation returns the top left 3x3 block.
func (t Transform) Rotation() mgl64.Mat3 {
	return t.mat.Mat3()
}

// Translation returns the XYZ translation column.
func (t Transform) Translation() r3.Vector {
	col := t.mat.Col(3)
	return r3.Vector{X: col[0], Y: col[1], Z: col[2]}
}

// Round returns t with every element rounded to the given number of fractional digits.
func (t Transform) Round(digits int) Transform {
	var out mgl64.Mat4
	for i, v := range t.mat {
		out[i] = roundFloat(v, digits)
	}
	return Transform{out}
}

// ApproxEqual reports whether every element of t is within epsilon of o.
func (t Transform) ApproxEqual(o Transform, epsilon float64) bool {
	return t.mat.ApproxEqualThreshold(o.mat, epsilon)
}

// IsFinite reports whether t contains no NaN or infinite element.
func (t Transform) IsFinite() bool {
	for _, v := range t.mat {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// Dense returns t as a row-major gonum matrix.
func (t Transform) Dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for r := 0; r < 4; r++ {
		row := t.mat.Row(r)
		data = append(data, row[:]...)
	}
	return mat.NewDense(4, 4, data)
}

// String prints the matrix one row per line.
func (t Transform) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		row := t.mat.Row(r)
		for c := range row {
			// print -0 as 0
			if row[c] == 0 {
				row[c] = 0
			}
		}
		fmt.Fprintf(&sb, "[%10.5f %10.5f %10.5f %10.5f]", row[0], row[1], row[2], row[3])
		if r < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RotZ returns a homogeneous rotation of theta radians about Z, rounded to 5 digits.
func RotZ(theta float64) Transform {
	return Transform{mgl64.HomogRotate3DZ(theta)}.Round(rotZDigits)
}

// RotX returns a homogeneous rotation of alpha radians about X, rounded to 2 digits.
func RotX(alpha float64) Transform {
	return Transform{mgl64.HomogRotate3DX(alpha)}.Round(axisDigits)
}

// TransX returns a translation of a along X, rounded to 2 digits.
func TransX(a float64) Transform {
	return Transform{mgl64.Translate3D(a, 0, 0)}.Round(axisDigits)
}

// TransZ returns a translation of d along Z, rounded to 2 digits.
func TransZ(d float64) Transform {
	return Transform{mgl64.Translate3D(0, 0, d)}.Round(axisDigits)
}

// DH returns the transform of a single joint, RotZ(theta)·TransZ(d)·TransX(a)·RotX(alpha).
// Only the primitives are rounded; the product is not.
func DH(theta, d, a, alpha float64) Transform {
	return RotZ(theta).Mul(TransZ(d)).Mul(TransX(a)).Mul(RotX(alpha))
}

// EndEffectorPosition transforms the homogeneous origin (0, 0, 0, 1) by t. The first three
// entries are the position of t's origin in the base frame and the fourth is 1.
func EndEffectorPosition(t Transform) mgl64.Vec4 {
	return t.mat.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
}
