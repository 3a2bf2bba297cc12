package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_MissingOptional(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Nil(t, cfg.WaitingTime)
}

func TestLoadFile_MissingRequired(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoadFile_Apply(t *testing.T) {
	path := writeConfig(t, `
waiting_time: 2.5
skip_failures: true
max_attempts: 30
backend: networking
probe: nmcli
superuser: doas
lang: fr_FR
log_file: /tmp/reload-wifi.log
`)
	f, err := LoadFile(path, true)
	require.NoError(t, err)

	s := Defaults()
	require.NoError(t, f.Apply(&s))

	assert.Equal(t, 2500*time.Millisecond, s.Run.WaitingTime)
	assert.True(t, s.Run.SkipFailures)
	assert.False(t, s.Run.Force)
	assert.Equal(t, 30, s.Run.MaxAttempts)
	assert.Equal(t, BackendNetworking, s.Backend)
	assert.Equal(t, ProbeNmcli, s.Probe)
	assert.Equal(t, "doas", s.Superuser)
	assert.Equal(t, "fr_FR", s.Lang)
	assert.Equal(t, "/tmp/reload-wifi.log", s.LogFile)
}

func TestLoadFile_EmptyKeepsDefaults(t *testing.T) {
	f, err := LoadFile(writeConfig(t, "{}\n"), true)
	require.NoError(t, err)

	s := Defaults()
	require.NoError(t, f.Apply(&s))
	assert.Equal(t, Defaults(), s)
}

func TestApply_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"negative waiting time": "waiting_time: -3\n",
		"infinite waiting time": "waiting_time: .inf\n",
		"nan waiting time":      "waiting_time: .nan\n",
		"huge waiting time":     "waiting_time: 1e300\n",
		"negative attempts":     "max_attempts: -1\n",
		"unknown backend":       "backend: wicd\n",
		"unknown probe":         "probe: iw\n",
	}
	for name, content := range cases {
		f, err := LoadFile(writeConfig(t, content), true)
		require.NoError(t, err, name)

		s := Defaults()
		assert.Error(t, f.Apply(&s), name)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "waiting_time: [1, 2\n"), true)
	assert.Error(t, err)
}
