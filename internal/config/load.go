package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file.
// A missing file is only an error when required is true.
func LoadFile(path string, required bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Apply overlays the values present in the file on top of s
func (f *FileConfig) Apply(s *Settings) error {
	if f.WaitingTime != nil {
		if err := ValidateWaitingTime(*f.WaitingTime); err != nil {
			return fmt.Errorf("waiting_time: %w", err)
		}
		s.Run.WaitingTime = Seconds(*f.WaitingTime)
	}
	if f.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts: %w", ErrNegative)
	}

	s.Run.Force = s.Run.Force || f.Force
	s.Run.SkipFailures = s.Run.SkipFailures || f.SkipFailures
	s.NoColor = s.NoColor || f.NoColor
	if f.MaxAttempts > 0 {
		s.Run.MaxAttempts = f.MaxAttempts
	}

	if f.Backend != "" {
		b, err := ParseBackend(f.Backend)
		if err != nil {
			return err
		}
		s.Backend = b
	}
	if f.Probe != "" {
		p, err := ParseProbe(f.Probe)
		if err != nil {
			return err
		}
		s.Probe = p
	}
	if f.Superuser != "" {
		s.Superuser = f.Superuser
	}
	if f.Lang != "" {
		s.Lang = f.Lang
	}
	if f.LogFile != "" {
		s.LogFile = f.LogFile
	}

	return nil
}

// ParseBackend validates a backend name
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendAuto, BackendNetworkManager, BackendNetworking, BackendOpenWrt:
		return b, nil
	}
	return "", fmt.Errorf("unknown backend %q", name)
}

// ParseProbe validates a probe name
func ParseProbe(name string) (ProbeKind, error) {
	switch p := ProbeKind(name); p {
	case ProbeIwgetid, ProbeNmcli:
		return p, nil
	}
	return "", fmt.Errorf("unknown probe %q", name)
}
