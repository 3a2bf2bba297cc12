package client

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes external commands
type Runner interface {
	// Output runs the command and returns its standard output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command attached to the terminal
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec. Commands are killed when ctx is done.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	// sudo may need to prompt for a password
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
