// Package executor provides command execution functionality.
package executor

import (
	"context"
	"io"
	"os/exec"

	"github.com/runoshun/issue-triage/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
// A non-zero exit status is returned as *exec.ExitError.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	return execCmd.Run()
}
