// Package serial provides utilities for finding and talking to serial based motion controllers.
package serial

import (
	"io"
	"time"

	"github.com/pkg/errors"
	ser "go.bug.st/serial"
	"go.uber.org/multierr"
)

// Options to be passed to Open(), closely mirrors ser.Mode.
type Options struct {
	BaudRate int
	DataBits int
	StopBits StopBits
	Parity   Parity
	// ReadTimeout in milliseconds, 0 blocks until data arrives.
	ReadTimeout int
}

// DefaultOptions are 9600 baud 8N1 with a one second read timeout.
func DefaultOptions() Options {
	return Options{
		BaudRate:    9600,
		DataBits:    8,
		StopBits:    OneStopBit,
		Parity:      NoParity,
		ReadTimeout: 1000,
	}
}

// Parity describes a serial port parity setting.
type Parity int

const (
	// NoParity disable parity control (default).
	NoParity Parity = iota
	// OddParity enable odd-parity check.
	OddParity
	// EvenParity enable even-parity check.
	EvenParity
	// MarkParity enable mark-parity (always 1) check.
	MarkParity
	// SpaceParity enable space-parity (always 0) check.
	SpaceParity
)

// StopBits describe a serial port stop bits setting.
type StopBits int

const (
	// OneStopBit sets 1 stop bit (default).
	OneStopBit StopBits = iota
	// OnePointFiveStopBits sets 1.5 stop bits.
	OnePointFiveStopBits
	// TwoStopBits sets 2 stop bits.
	TwoStopBits
)

// Port is an open serial device.
type Port interface {
	io.ReadWriteCloser
	// ResetInputBuffer discards data received but not yet read.
	ResetInputBuffer() error
}

func (o Options) mode() *ser.Mode {
	return &ser.Mode{
		BaudRate: o.BaudRate,
		Parity:   ser.Parity(o.Parity),
		DataBits: o.DataBits,
		StopBits: ser.StopBits(o.StopBits),
	}
}

// Open attempts to open a serial device on the given path. It's a variable
// in case you need to override it during tests.
var Open = func(devicePath string, options Options) (Port, error) {
	device, err := ser.Open(devicePath, options.mode())
	if err != nil {
		return nil, err
	}
	timeout := ser.NoTimeout
	if options.ReadTimeout > 0 {
		timeout = time.Duration(options.ReadTimeout) * time.Millisecond
	}
	if err := device.SetReadTimeout(timeout); err != nil {
		return nil, errors.Wrap(multierr.Combine(err, device.Close()), "failed to set read timeout")
	}
	return device, nil
}

// ListPorts returns the paths of the serial ports present on the system. It's a variable
// in case you need to override it during tests.
var ListPorts = func() ([]string, error) {
	ports, err := ser.GetPortsList()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list serial ports")
	}
	return ports, nil
}
