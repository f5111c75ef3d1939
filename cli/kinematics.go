package cli

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinchain/kinematics"
	"go.viam.com/kinchain/serial"
	"go.viam.com/kinchain/utils"
)

// ForwardKinematicsAction loads a model file and prints every joint transform, the full
// chain transform and the end effector position.
func ForwardKinematicsAction(c *cli.Context, logger golog.Logger) error {
	cfg, err := kinematics.ParseModelFile(c.String(flagModel))
	if err != nil {
		return err
	}
	chain, err := cfg.ParseConfig()
	if err != nil {
		return err
	}
	digits := c.Int(flagDigits)
	logger.Debugw("chain built", "model", cfg.Name, "dof", chain.DoF())

	w := c.App.Writer
	table := chain.Table()
	for i, joint := range chain.JointTransforms() {
		name := ""
		if i < len(cfg.DHParams) && cfg.DHParams[i].ID != "" {
			name = " (" + cfg.DHParams[i].ID + ")"
		}
		p := table[i]
		printf(w, "joint %d%s: theta=%.2fdeg d=%v a=%v alpha=%.2fdeg\n%s", i, name,
			utils.RadToDeg(p.Theta), p.D, p.A, utils.RadToDeg(p.Alpha), joint.Round(digits))
	}
	printf(w, "base to end effector:\n%s", chain.Transform().Round(digits))
	p := chain.Position()
	pos := kinematics.RoundMatrix(mat.NewVecDense(3, []float64{p.X, p.Y, p.Z}), digits)
	printf(w, "end effector position: x=%v y=%v z=%v", unsigned(pos.At(0, 0)), unsigned(pos.At(1, 0)), unsigned(pos.At(2, 0)))
	return nil
}

// ListPortsAction prints the serial ports present on this machine.
func ListPortsAction(c *cli.Context) error {
	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		printf(c.App.Writer, "no serial ports found")
		return nil
	}
	for _, p := range ports {
		printf(c.App.Writer, "%s", p)
	}
	return nil
}

// SendAction opens a serial port, discards pending input and writes the message argument.
func SendAction(c *cli.Context, logger golog.Logger) (err error) {
	if c.Args().Len() != 1 {
		return errors.New("send takes exactly one MESSAGE argument")
	}
	conn := serial.NewConnection(logger)
	conn.Configure(c.String(flagPort), c.Int(flagBaud))
	if err := conn.Start(); err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, conn.Close())
	}()
	if err := conn.Flush(); err != nil {
		return err
	}
	msg := c.Args().First()
	if err := conn.Write([]byte(msg)); err != nil {
		return err
	}
	printf(c.App.Writer, "sent %d bytes to %s", len(msg), conn.Path())
	return nil
}

// unsigned turns -0 into 0 so it prints without a sign.
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
