package client

import (
	"context"

	"reload-wifi/internal/config"
)

// Outcome is the result of a restart invocation
type Outcome int

const (
	Completed Outcome = iota
	Failed
	// Cancelled means the user interrupted the invocation
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Restarter is what the restart loop needs to restart the network service
type Restarter interface {
	Restart(ctx context.Context) Outcome
}

// ServiceRestarter restarts the network service with superuser rights
type ServiceRestarter struct {
	Runner  Runner
	Command []string
}

// NewServiceRestarter builds the restart command for backend.
// The superuser tool is skipped when running as root.
func NewServiceRestarter(runner Runner, backend config.Backend, superuser string, euid int) *ServiceRestarter {
	var command []string
	if superuser != "" && euid != 0 {
		command = append(command, superuser)
	}
	command = append(command, RestartCommand(backend)...)

	return &ServiceRestarter{Runner: runner, Command: command}
}

// Restart runs the command; success is decided by its exit status only
func (s *ServiceRestarter) Restart(ctx context.Context) Outcome {
	err := s.Runner.Run(ctx, s.Command[0], s.Command[1:]...)
	if ctx.Err() != nil {
		return Cancelled
	}
	if err != nil {
		return Failed
	}
	return Completed
}

// DryRunRestarter pretends every restart succeeds
type DryRunRestarter struct{}

func (DryRunRestarter) Restart(context.Context) Outcome {
	return Completed
}
