// Package cli contains all business logic needed by the CLI command.
package cli

import (
	"fmt"
	"io"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	// Flags.
	flagDebug  = "debug"
	flagModel  = "model"
	flagDigits = "digits"
	flagPort   = "port"
	flagBaud   = "baud"
	flagOut    = "out"
	flagPlane  = "plane"
)

// NewApp returns the kinchain CLI writing normal output to out and errors to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	var logger golog.Logger = zap.NewNop().Sugar()
	app := &cli.App{
		Name:            "kinchain",
		Usage:           "compute forward kinematics of DH described arms and talk to their controllers",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("kinchain")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "fk",
				Usage:     "print the joint transforms and end effector position of a model",
				UsageText: "kinchain fk --model arm.json",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagModel,
						Aliases:  []string{"m"},
						Required: true,
						Usage:    "model `FILE` (.json, .yaml or .yml)",
					},
					&cli.IntFlag{
						Name:  flagDigits,
						Value: 2,
						Usage: "round printed values to `N` fractional digits",
					},
				},
				Action: func(c *cli.Context) error {
					return ForwardKinematicsAction(c, logger)
				},
			},
			{
				Name:      "plot",
				Usage:     "draw the joint origins of a model projected onto a plane",
				UsageText: "kinchain plot --model arm.json --out arm.png [--plane xz]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagModel,
						Aliases:  []string{"m"},
						Required: true,
						Usage:    "model `FILE` (.json, .yaml or .yml)",
					},
					&cli.StringFlag{
						Name:     flagOut,
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "image `FILE` to write, format taken from the extension",
					},
					&cli.StringFlag{
						Name:  flagPlane,
						Value: "xz",
						Usage: "projection plane: xy, xz or yz",
					},
				},
				Action: func(c *cli.Context) error {
					return PlotAction(c, logger)
				},
			},
			{
				Name:   "ports",
				Usage:  "list serial ports",
				Action: ListPortsAction,
			},
			{
				Name:      "send",
				Usage:     "write a message to a serial controller",
				ArgsUsage: "MESSAGE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagPort,
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "serial device `PATH`",
					},
					&cli.IntFlag{
						Name:  flagBaud,
						Value: 9600,
						Usage: "baud rate",
					},
				},
				Action: func(c *cli.Context) error {
					return SendAction(c, logger)
				},
			},
		},
	}
	return app
}

func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
