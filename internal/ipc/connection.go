package ipc

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"
)

// Connection manages the Unix domain socket connection to the compositor
type Connection struct {
	socketPath string
	conn       net.Conn
	reader     *bufio.Reader
	timeout    time.Duration
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string, timeout time.Duration) *Connection {
	return &Connection{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes the Unix domain socket connection
func (c *Connection) Connect() error {
	var err error
	c.conn, err = net.Dial("unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	c.reader = bufio.NewReader(c.conn)
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	return c.conn != nil
}

// RoundTrip sends one message and waits for its reply. The configured
// timeout bounds both halves of the exchange; the context deadline tightens
// it further when one is set.
func (c *Connection) RoundTrip(ctx context.Context, msgType MessageType, payload []byte) ([]byte, error) {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := WriteMessage(c.conn, msgType, payload); err != nil {
		return nil, err
	}

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}
	reply, err := ReadMessage(c.reader, msgType)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
		}
		return nil, err
	}
	return reply, nil
}
