package command

import (
	"context"
	"fmt"

	"github.com/yourusername/swaynav/internal/ipc"
	"github.com/yourusername/swaynav/internal/types"
)

// Format renders a resolution as the sway command that enacts it. An
// override addresses the target container by id; a passthrough replays the
// user's request so sway's native directional focus applies unchanged.
func Format(res types.Resolution, dir types.Direction) string {
	if res.Passthrough {
		return fmt.Sprintf("focus %s", dir)
	}
	return fmt.Sprintf("[con_id=%d] focus", res.TargetID)
}

// Dispatch sends one command string and verifies every result in the reply.
// The process is single shot; a failed dispatch is terminal, never retried.
func Dispatch(ctx context.Context, c *ipc.Client, cmd string) error {
	results, err := c.RunCommand(ctx, cmd)
	if err != nil {
		return err
	}
	return CheckResults(results)
}

// CheckResults returns an error describing the first unsuccessful entry of a
// RUN_COMMAND reply.
func CheckResults(results []ipc.CommandResult) error {
	for _, r := range results {
		if r.Success {
			continue
		}
		msg := "unknown error"
		if r.Error != nil {
			msg = *r.Error
		}
		if r.ParseError {
			return fmt.Errorf("sway failed to parse command: %s", msg)
		}
		return fmt.Errorf("sway rejected command: %s", msg)
	}
	return nil
}
