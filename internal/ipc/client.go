package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/yourusername/swaynav/internal/tree"
)

const DefaultTimeout = 5 * time.Second

// SocketPath resolves the compositor socket path. An explicit path wins;
// otherwise the SWAYSOCK and I3SOCK environment variables are consulted in
// that order.
func SocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path := os.Getenv("SWAYSOCK"); path != "" {
		return path, nil
	}
	if path := os.Getenv("I3SOCK"); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no socket path: SWAYSOCK and I3SOCK are unset and --socket was not given")
}

// Client is a single-shot sway IPC client
type Client struct {
	conn *Connection
}

// NewClient creates a client for the given socket path
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		conn: NewConnection(socketPath, timeout),
	}
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// roundTrip connects lazily and performs one message exchange
func (c *Client) roundTrip(ctx context.Context, msgType MessageType, payload []byte) ([]byte, error) {
	if !c.conn.IsConnected() {
		if err := c.conn.Connect(); err != nil {
			return nil, err
		}
	}
	return c.conn.RoundTrip(ctx, msgType, payload)
}

// GetTree fetches and decodes one layout tree snapshot
func (c *Client) GetTree(ctx context.Context) (*tree.Node, error) {
	reply, err := c.roundTrip(ctx, MsgGetTree, nil)
	if err != nil {
		return nil, fmt.Errorf("get_tree failed: %w", err)
	}
	return tree.Decode(reply)
}

// GetTreeRaw fetches one layout tree snapshot as raw JSON
func (c *Client) GetTreeRaw(ctx context.Context) (json.RawMessage, error) {
	reply, err := c.roundTrip(ctx, MsgGetTree, nil)
	if err != nil {
		return nil, fmt.Errorf("get_tree failed: %w", err)
	}
	return json.RawMessage(reply), nil
}

// RunCommand submits a command string and returns sway's per-command results
func (c *Client) RunCommand(ctx context.Context, command string) ([]CommandResult, error) {
	reply, err := c.roundTrip(ctx, MsgRunCommand, []byte(command))
	if err != nil {
		return nil, fmt.Errorf("run_command failed: %w", err)
	}
	var results []CommandResult
	if err := json.Unmarshal(reply, &results); err != nil {
		return nil, fmt.Errorf("failed to decode command results: %w", err)
	}
	return results, nil
}

// GetWorkspaces fetches the current workspace list
func (c *Client) GetWorkspaces(ctx context.Context) ([]Workspace, error) {
	reply, err := c.roundTrip(ctx, MsgGetWorkspaces, nil)
	if err != nil {
		return nil, fmt.Errorf("get_workspaces failed: %w", err)
	}
	var workspaces []Workspace
	if err := json.Unmarshal(reply, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to decode workspaces: %w", err)
	}
	return workspaces, nil
}

// GetOutputs fetches the current output list
func (c *Client) GetOutputs(ctx context.Context) ([]Output, error) {
	reply, err := c.roundTrip(ctx, MsgGetOutputs, nil)
	if err != nil {
		return nil, fmt.Errorf("get_outputs failed: %w", err)
	}
	var outputs []Output
	if err := json.Unmarshal(reply, &outputs); err != nil {
		return nil, fmt.Errorf("failed to decode outputs: %w", err)
	}
	return outputs, nil
}

// GetVersion fetches compositor version information
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	reply, err := c.roundTrip(ctx, MsgGetVersion, nil)
	if err != nil {
		return nil, fmt.Errorf("get_version failed: %w", err)
	}
	var version Version
	if err := json.Unmarshal(reply, &version); err != nil {
		return nil, fmt.Errorf("failed to decode version: %w", err)
	}
	return &version, nil
}
