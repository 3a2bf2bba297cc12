package client

import (
	"context"
	"os"
	"os/exec"

	"reload-wifi/internal/config"
)

// Detector determines which network service the host runs
type Detector struct {
	Runner   Runner
	LookPath func(string) (string, error)
	Stat     func(string) (os.FileInfo, error)
}

// NewDetector returns a Detector looking at the real system
func NewDetector(runner Runner) Detector {
	return Detector{Runner: runner, LookPath: exec.LookPath, Stat: os.Stat}
}

// Detect returns the backend in use, defaulting to NetworkManager
func (d Detector) Detect(ctx context.Context) config.Backend {
	// Check for NetworkManager first (most common on modern distros)
	if _, err := d.LookPath("nmcli"); err == nil {
		// Verify NetworkManager is actually running
		if d.Runner.Run(ctx, "systemctl", "is-active", "--quiet", "NetworkManager") == nil {
			return config.BackendNetworkManager
		}
	}

	if _, err := d.Stat("/etc/openwrt_release"); err == nil {
		return config.BackendOpenWrt
	}

	// ifupdown (older Debian/Ubuntu)
	if _, err := d.Stat("/etc/network/interfaces"); err == nil {
		return config.BackendNetworking
	}

	return config.BackendNetworkManager
}

// RestartCommand returns the command restarting the backend's service
func RestartCommand(backend config.Backend) []string {
	switch backend {
	case config.BackendNetworking:
		return []string{"systemctl", "restart", "networking"}
	case config.BackendOpenWrt:
		return []string{"/etc/init.d/network", "restart"}
	default:
		return []string{"systemctl", "restart", "NetworkManager"}
	}
}
