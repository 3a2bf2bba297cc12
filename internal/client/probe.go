package client

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"reload-wifi/internal/config"
)

// IwgetidProbe reads the current SSID with `iwgetid -r`
type IwgetidProbe struct {
	Runner Runner
}

// CurrentNetwork returns the associated SSID, or "" when not connected
func (p IwgetidProbe) CurrentNetwork(ctx context.Context) (string, error) {
	output, err := p.Runner.Output(ctx, "iwgetid", "-r")
	if err != nil {
		// iwgetid exits non-zero when no interface is associated
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("iwgetid failed: %w", err)
		}
	}

	return strings.TrimSpace(string(output)), nil
}

// NmcliProbe reads the active SSID from NetworkManager
type NmcliProbe struct {
	Runner Runner
}

// CurrentNetwork returns the SSID of the active access point, or "" when none is active
func (p NmcliProbe) CurrentNetwork(ctx context.Context) (string, error) {
	output, err := p.Runner.Output(ctx, "nmcli", "-t", "-f", "ACTIVE,SSID", "device", "wifi", "list", "--rescan", "no")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("nmcli failed: %w", err)
	}

	// Terse output: "yes:HomeNet", with ':' inside values escaped as "\:"
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for _, line := range lines {
		active, ssid, ok := strings.Cut(line, ":")
		if !ok || active != "yes" {
			continue
		}
		ssid = strings.TrimSpace(unescapeTerse(ssid))
		if ssid != "" {
			return ssid, nil
		}
	}

	return "", nil
}

func unescapeTerse(s string) string {
	return strings.NewReplacer(`\:`, ":", `\\`, `\`).Replace(s)
}

// DryRunProbe never sees a network
type DryRunProbe struct{}

func (DryRunProbe) CurrentNetwork(context.Context) (string, error) {
	return "", nil
}

// Probe is what the restart loop needs to detect a connection
type Probe interface {
	CurrentNetwork(ctx context.Context) (string, error)
}

// NewProbe returns the probe for kind, or a DryRunProbe in dry-run mode
func NewProbe(kind config.ProbeKind, runner Runner, dryRun bool) Probe {
	if dryRun {
		return DryRunProbe{}
	}
	if kind == config.ProbeNmcli {
		return NmcliProbe{Runner: runner}
	}
	return IwgetidProbe{Runner: runner}
}
