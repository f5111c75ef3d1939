package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/kinchain/kinematics"
)

func TestPlotAction(t *testing.T) {
	out := filepath.Join(t.TempDir(), "arm.svg")
	var buf bytes.Buffer
	err := NewApp(&buf, &buf).Run([]string{"kinchain", "plot", "--model", "../kinematics/testdata/three_dof.json", "--out", out})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldContainSubstring, "wrote "+out)

	data, err := os.ReadFile(out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, "<svg")
}

func TestPlotActionErrors(t *testing.T) {
	var buf bytes.Buffer
	out := filepath.Join(t.TempDir(), "arm.svg")
	err := NewApp(&buf, &buf).Run([]string{"kinchain", "plot", "--model", "../kinematics/testdata/three_dof.json", "--out", out, "--plane", "xw"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown plane")

	err = NewApp(&buf, &buf).Run([]string{"kinchain", "plot", "--model", "../kinematics/testdata/three_dof.json"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "out")
}

func TestPlotChainProjections(t *testing.T) {
	chain, err := kinematics.NewChain(
		[]float64{0}, []float64{2}, []float64{1}, []float64{0}, []kinematics.Limit{{}},
	)
	test.That(t, err, test.ShouldBeNil)

	for name, proj := range projections {
		t.Run(name, func(t *testing.T) {
			p, err := plotChain(chain, proj)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, p.X.Label.Text, test.ShouldEqual, proj.xLabel)
			test.That(t, p.Y.Label.Text, test.ShouldEqual, proj.yLabel)
		})
	}

	x, y := projections["xz"].project(chain.Position())
	test.That(t, x, test.ShouldEqual, 1.)
	test.That(t, y, test.ShouldEqual, 2.)
}
