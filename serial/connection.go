package serial

import (
	"io"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// ErrNotOpen is returned when a connection is used before Start or after Close.
var ErrNotOpen = errors.New("serial connection is not open")

// maxLineLength bounds how much Flush reads while looking for the end of a line.
const maxLineLength = 4096

// Connection is a reopenable link to a serial controller. The port and speed are set with
// Configure and take effect on the next Start.
type Connection struct {
	mu      sync.Mutex
	path    string
	options Options
	port    Port
	logger  golog.Logger
}

// NewConnection returns a closed connection with DefaultOptions and no port.
func NewConnection(logger golog.Logger) *Connection {
	return &Connection{options: DefaultOptions(), logger: logger}
}

// Configure sets the device path and baud rate used by the next Start.
func (c *Connection) Configure(path string, baudRate int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = path
	c.options.BaudRate = baudRate
}

// Path returns the configured device path.
func (c *Connection) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// BaudRate returns the configured baud rate.
func (c *Connection) BaudRate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options.BaudRate
}

// Start closes any port already open and opens the configured one.
func (c *Connection) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.closeLocked(); err != nil {
		c.logger.Warnw("error closing previous serial port", "path", c.path, "error", err)
	}
	if c.path == "" {
		return errors.New("no serial port configured")
	}
	port, err := Open(c.path, c.options)
	if err != nil {
		return errors.Wrapf(err, "failed to open serial port %s", c.path)
	}
	c.port = port
	c.logger.Debugw("serial port open", "path", c.path, "baud", c.options.BaudRate)
	return nil
}

// IsOpen reports whether a port is currently open.
func (c *Connection) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port != nil
}

// Close releases the port. Closing a closed connection does nothing.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Connection) closeLocked() error {
	if c.port == nil {
		return nil
	}
	err := c.port.Close()
	c.port = nil
	c.logger.Debugw("serial port closed", "path", c.path)
	return err
}

// Write sends msg in full.
func (c *Connection) Write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.port == nil {
		return ErrNotOpen
	}
	for len(msg) > 0 {
		n, err := c.port.Write(msg)
		if err != nil {
			return errors.Wrapf(err, "failed to write to serial port %s", c.path)
		}
		if n == 0 {
			return errors.Errorf("serial port %s accepted no bytes", c.path)
		}
		msg = msg[n:]
	}
	return nil
}

// Flush discards buffered input and then reads up to the next newline, so the next read
// starts on a line boundary. A read timeout ends the line early without error.
func (c *Connection) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.port == nil {
		return ErrNotOpen
	}
	if err := c.port.ResetInputBuffer(); err != nil {
		return errors.Wrapf(err, "failed to reset input buffer of %s", c.path)
	}
	buf := make([]byte, 1)
	for i := 0; i < maxLineLength; i++ {
		n, err := c.port.Read(buf)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read from serial port %s", c.path)
		}
		if n == 0 || buf[0] == '\n' {
			return nil
		}
	}
	c.logger.Debugw("no newline found while flushing", "path", c.path, "read", maxLineLength)
	return nil
}
