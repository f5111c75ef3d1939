package cli

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/kinchain/kinematics"
)

// projection picks two coordinates of a point for a planar view of the arm.
type projection struct {
	xLabel, yLabel string
	project        func(r3.Vector) (float64, float64)
}

var projections = map[string]projection{
	"xy": {"x", "y", func(v r3.Vector) (float64, float64) { return v.X, v.Y }},
	"xz": {"x", "z", func(v r3.Vector) (float64, float64) { return v.X, v.Z }},
	"yz": {"y", "z", func(v r3.Vector) (float64, float64) { return v.Y, v.Z }},
}

// PlotAction draws the joint origins of a model projected onto a plane and saves the figure.
// The output format follows the file extension (png, svg, pdf, ...).
func PlotAction(c *cli.Context, logger golog.Logger) error {
	planeName := strings.ToLower(c.String(flagPlane))
	proj, ok := projections[planeName]
	if !ok {
		return errors.Errorf("unknown plane %q, expected one of xy, xz or yz", planeName)
	}

	cfg, err := kinematics.ParseModelFile(c.String(flagModel))
	if err != nil {
		return err
	}
	chain, err := cfg.ParseConfig()
	if err != nil {
		return err
	}

	p, err := plotChain(chain, proj)
	if err != nil {
		return err
	}
	if cfg.Name != "" {
		p.Title.Text = cfg.Name
	}

	out := c.String(flagOut)
	if err := p.Save(6*vg.Inch, 6*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", out)
	}
	logger.Debugw("plot saved", "file", out, "plane", planeName, "dof", chain.DoF())
	printf(c.App.Writer, "wrote %s", out)
	return nil
}

// plotChain builds a line through the projected joint origins with a label on every joint.
func plotChain(chain *kinematics.Chain, proj projection) (*plot.Plot, error) {
	origins := chain.JointOrigins()
	pts := make(plotter.XYs, 0, len(origins))
	labels := make([]string, 0, len(origins))
	for i, o := range origins {
		x, y := proj.project(o)
		pts = append(pts, plotter.XY{X: x, Y: y})
		switch i {
		case 0:
			labels = append(labels, "base")
		case len(origins) - 1:
			labels = append(labels, "effector")
		default:
			labels = append(labels, fmt.Sprintf("j%d", i))
		}
	}

	p := plot.New()
	p.X.Label.Text = proj.xLabel
	p.Y.Label.Text = proj.yLabel
	p.Add(plotter.NewGrid())

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Width = vg.Points(2)
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	scatter.Radius = vg.Points(3)
	p.Add(line, scatter)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(names)
	return p, nil
}
