package kinematics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RoundMatrix returns a copy of m with every element rounded to the given number of
// fractional digits. It is used to strip representation noise, such as the 6e-17 left by
// cos(pi/2), before values are compared or displayed. Negative digits round to the left of
// the decimal point.
func RoundMatrix(m mat.Matrix, digits int) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return roundFloat(v, digits)
	}, m)
	return &out
}

// maxScaled bounds the scaled value that survives the division back by scale exactly enough
// to round to the same integer again.
const maxScaled = 1 << 50

// roundFloat rounds half to even, as numpy does. Finite input always gives finite output.
func roundFloat(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow10(digits)
	switch {
	case scale == 0:
		// rounding to a multiple of more than 10^323 leaves nothing representable
		return 0
	case math.IsInf(scale, 0):
		return v
	}
	scaled := v * scale
	if math.Abs(scaled) >= maxScaled {
		return v
	}
	return math.RoundToEven(scaled) / scale
}
