package config

import "time"

const (
	// DefaultWaitingTime is the pause between two restart attempts, in seconds
	DefaultWaitingTime = 5.0
	// DefaultSuperuser is prepended to the restart command when not running as root
	DefaultSuperuser = "sudo"
	// DefaultPath is where the optional configuration file is looked up
	DefaultPath = "/etc/reload-wifi/config.yaml"
)

// Backend names the service restarted between attempts
type Backend string

const (
	BackendAuto           Backend = "auto"
	BackendNetworkManager Backend = "networkmanager"
	BackendNetworking     Backend = "networking"
	BackendOpenWrt        Backend = "openwrt"
)

// ProbeKind names the command used to read the current wireless network
type ProbeKind string

const (
	ProbeIwgetid ProbeKind = "iwgetid"
	ProbeNmcli   ProbeKind = "nmcli"
)

// RunConfig is the immutable configuration of one run of the restart loop
type RunConfig struct {
	WaitingTime  time.Duration
	Force        bool
	SkipFailures bool
	DryRun       bool
	MaxAttempts  int // 0 means unlimited
}

// Settings holds everything the command line and config file can set
type Settings struct {
	Run       RunConfig
	Backend   Backend
	Probe     ProbeKind
	Superuser string
	Lang      string
	LogFile   string
	NoColor   bool
}

// FileConfig is the on-disk YAML configuration
type FileConfig struct {
	WaitingTime  *float64 `yaml:"waiting_time"`
	Force        bool     `yaml:"force"`
	SkipFailures bool     `yaml:"skip_failures"`
	MaxAttempts  int      `yaml:"max_attempts"`
	Backend      string   `yaml:"backend"`
	Probe        string   `yaml:"probe"`
	Superuser    string   `yaml:"superuser"`
	Lang         string   `yaml:"lang"`
	LogFile      string   `yaml:"log_file"`
	NoColor      bool     `yaml:"no_color"`
}

// Defaults returns the settings used when nothing else is configured
func Defaults() Settings {
	return Settings{
		Run: RunConfig{
			WaitingTime: Seconds(DefaultWaitingTime),
		},
		Backend:   BackendAuto,
		Probe:     ProbeIwgetid,
		Superuser: DefaultSuperuser,
	}
}

// Seconds converts a validated number of seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
