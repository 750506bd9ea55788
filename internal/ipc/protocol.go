package ipc

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/yourusername/swaynav/internal/types"
)

// magic prefixes every i3-ipc frame in both directions
var magic = [6]byte{'i', '3', '-', 'i', 'p', 'c'}

// MessageType identifies the request being sent over the socket.
// Replies echo the same type. Values are fixed by the i3/sway IPC protocol.
type MessageType int32

const (
	MsgRunCommand    MessageType = 0
	MsgGetWorkspaces MessageType = 1
	MsgGetOutputs    MessageType = 3
	MsgGetTree       MessageType = 4
	MsgGetVersion    MessageType = 7
)

// WriteMessage encodes one i3-ipc frame: the magic bytes, a native-endian
// int32 payload length, a native-endian int32 message type, then the payload.
func WriteMessage(w io.Writer, msgType MessageType, payload []byte) error {
	header := make([]byte, 0, len(magic)+8)
	header = append(header, magic[:]...)
	header = binary.NativeEndian.AppendUint32(header, uint32(len(payload)))
	header = binary.NativeEndian.AppendUint32(header, uint32(msgType))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write message header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("failed to write message payload: %w", err)
		}
	}
	return nil
}

// ReadMessage decodes one i3-ipc frame and verifies that it carries the
// expected message type.
func ReadMessage(r io.Reader, want MessageType) ([]byte, error) {
	header := make([]byte, len(magic)+8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read message header: %w", err)
	}
	if [6]byte(header[:6]) != magic {
		return nil, fmt.Errorf("bad magic bytes %q in reply", header[:6])
	}

	length := binary.NativeEndian.Uint32(header[6:10])
	msgType := MessageType(binary.NativeEndian.Uint32(header[10:14]))
	if msgType != want {
		return nil, fmt.Errorf("unexpected reply type %d, want %d", msgType, want)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read message payload: %w", err)
	}
	return payload, nil
}

// CommandResult is one entry of a RUN_COMMAND reply; sway returns one entry
// per command in the submitted string.
type CommandResult struct {
	Success    bool    `json:"success"`
	ParseError bool    `json:"parse_error"`
	Error      *string `json:"error"`
}

// Workspace is one entry of a GET_WORKSPACES reply
type Workspace struct {
	Num     int        `json:"num"`
	Name    string     `json:"name"`
	Visible bool       `json:"visible"`
	Focused bool       `json:"focused"`
	Urgent  bool       `json:"urgent"`
	Rect    types.Rect `json:"rect"`
	Output  string     `json:"output"`
}

// Output is one entry of a GET_OUTPUTS reply
type Output struct {
	Name             string     `json:"name"`
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	Serial           string     `json:"serial"`
	Active           bool       `json:"active"`
	Primary          bool       `json:"primary"`
	Scale            float64    `json:"scale"`
	CurrentWorkspace *string    `json:"current_workspace"`
	Rect             types.Rect `json:"rect"`
}

// Version is the GET_VERSION reply
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}
