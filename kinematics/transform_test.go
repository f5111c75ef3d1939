package kinematics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestPrimitivesAtZeroAreIdentity(t *testing.T) {
	identity := NewTransform().Matrix()
	test.That(t, RotZ(0).Matrix(), test.ShouldResemble, identity)
	test.That(t, RotX(0).Matrix(), test.ShouldResemble, identity)
	test.That(t, TransX(0).Matrix(), test.ShouldResemble, identity)
	test.That(t, TransZ(0).Matrix(), test.ShouldResemble, identity)
	test.That(t, DH(0, 0, 0, 0).Matrix(), test.ShouldResemble, identity)
}

func TestPrimitiveRounding(t *testing.T) {
	// RotZ keeps 5 digits
	rz := RotZ(math.Pi / 6)
	test.That(t, rz.At(0, 0), test.ShouldEqual, 0.86603)
	test.That(t, rz.At(1, 0), test.ShouldEqual, 0.5)
	test.That(t, rz.At(0, 1), test.ShouldEqual, -0.5)

	// the other primitives keep 2
	rx := RotX(math.Pi / 6)
	test.That(t, rx.At(1, 1), test.ShouldEqual, 0.87)
	test.That(t, rx.At(2, 1), test.ShouldEqual, 0.5)
	test.That(t, rx.At(1, 2), test.ShouldEqual, -0.5)

	test.That(t, TransX(1.23456).At(0, 3), test.ShouldEqual, 1.23)
	test.That(t, TransZ(7.891).At(2, 3), test.ShouldEqual, 7.89)

	// cos(pi/2) noise is gone
	test.That(t, RotZ(math.Pi/2).At(0, 0), test.ShouldEqual, 0.)
	test.That(t, RotX(math.Pi/2).At(1, 1), test.ShouldEqual, 0.)
}

func TestRotZIsOrthonormal(t *testing.T) {
	identity := mat.NewDiagDense(3, []float64{1, 1, 1})
	for _, theta := range []float64{0, 0.1, 0.7, math.Pi / 3, math.Pi / 2, 2.5, math.Pi, -1.3, 4.2} {
		r := RotZ(theta).Dense().Slice(0, 3, 0, 3)
		var rtr mat.Dense
		rtr.Mul(r.T(), r)
		test.That(t, mat.EqualApprox(&rtr, identity, 1e-4), test.ShouldBeTrue)
		test.That(t, mat.Det(r), test.ShouldAlmostEqual, 1, 1e-4)
	}
}

func TestDHCompositionOrder(t *testing.T) {
	theta, d, a, alpha := 0.4, 2.5, 3.25, math.Pi/3

	dh := DH(theta, d, a, alpha)
	expected := RotZ(theta).Mul(TransZ(d)).Mul(TransX(a)).Mul(RotX(alpha))
	test.That(t, dh.Matrix(), test.ShouldResemble, expected.Matrix())

	// a translation along X commutes with a rotation about X, so swapping those two is not
	// observable. Moving TransX ahead of RotZ is.
	swapped := TransX(a).Mul(RotZ(theta)).Mul(TransZ(d)).Mul(RotX(alpha))
	test.That(t, dh.ApproxEqual(swapped, 1e-6), test.ShouldBeFalse)

	reversed := RotX(alpha).Mul(TransX(a)).Mul(TransZ(d)).Mul(RotZ(theta))
	test.That(t, dh.ApproxEqual(reversed, 1e-6), test.ShouldBeFalse)

	// composition is not rounded again
	test.That(t, dh.At(0, 1), test.ShouldNotEqual, dh.Round(2).At(0, 1))
}

func TestEndEffectorPositionOfIdentity(t *testing.T) {
	test.That(t, EndEffectorPosition(NewTransform()), test.ShouldResemble, mgl64.Vec4{0, 0, 0, 1})
}

// The position is the matrix-vector product T·[0 0 0 1]. Multiplying T elementwise by the
// broadcast origin instead would keep only T's bottom row; this test pins the difference.
func TestEndEffectorPositionIsMatrixProduct(t *testing.T) {
	tf := DH(math.Pi/2, 3, 5, math.Pi/2)
	pos := EndEffectorPosition(tf)
	test.That(t, pos, test.ShouldResemble, mgl64.Vec4{0, 5, 3, 1})
	test.That(t, tf.Translation(), test.ShouldResemble, r3.Vector{X: 0, Y: 5, Z: 3})

	origin := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 1, 1,
	})
	var elementwise mat.Dense
	elementwise.MulElem(tf.Dense(), origin)
	test.That(t, mat.Col(nil, 3, &elementwise), test.ShouldResemble, []float64{0, 0, 0, 1})
	test.That(t, mat.Col(nil, 3, &elementwise), test.ShouldNotResemble, pos[:])
}

func TestTransformDenseIsRowMajor(t *testing.T) {
	tf := TransX(4).Mul(TransZ(2))
	d := tf.Dense()
	test.That(t, d.At(0, 3), test.ShouldEqual, 4.)
	test.That(t, d.At(2, 3), test.ShouldEqual, 2.)
	test.That(t, d.At(3, 0), test.ShouldEqual, 0.)
	test.That(t, d.At(3, 3), test.ShouldEqual, 1.)
}

func TestTransformIsFinite(t *testing.T) {
	test.That(t, DH(1, 2, 3, 4).IsFinite(), test.ShouldBeTrue)
	test.That(t, TransZ(1e307).IsFinite(), test.ShouldBeTrue)
	test.That(t, NewTransformFromMatrix(mgl64.Mat4{14: math.Inf(1)}).IsFinite(), test.ShouldBeFalse)
	test.That(t, NewTransformFromMatrix(mgl64.Mat4{0: math.NaN()}).IsFinite(), test.ShouldBeFalse)
}

func TestTransformString(t *testing.T) {
	s := TransX(1.5).String()
	test.That(t, s, test.ShouldContainSubstring, "1.50000")
	test.That(t, s, test.ShouldContainSubstring, "\n")
}
