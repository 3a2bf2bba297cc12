package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reload-wifi/internal/config"
	"reload-wifi/internal/messages"
)

func noEnv(string) string { return "" }

func emptyConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_RejectsBadWaitingTime(t *testing.T) {
	cases := map[string]string{
		"nan":   "the value must not be NaN",
		"inf":   "the value must be finite",
		"-inf":  "the value must be finite",
		"-2":    "the value must not be negative",
		"soon":  "the value must be a number",
		"1e300": "the value is too large",
	}

	for raw, want := range cases {
		var stdout, stderr bytes.Buffer
		code := run([]string{"--waiting-time", raw, "--dry-run"}, noEnv, &stdout, &stderr)

		assert.Equal(t, 2, code, raw)
		assert.Empty(t, stdout.String(), raw)
		assert.Contains(t, stderr.String(), want, raw)
		assert.NotContains(t, stderr.String(), "ERROR:", raw)
	}
}

func TestRun_LocalizedValidationMessage(t *testing.T) {
	env := func(k string) string {
		if k == "LANG" {
			return "fr_FR.UTF-8"
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"--waiting-time=nan"}, env, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "la valeur ne doit pas être NaN")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--version"}, noEnv, &stdout, &stderr))
	assert.Equal(t, "reload-wifi dev\n", stdout.String())
}

func TestRun_UnexpectedArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"wlan0"}, noEnv, &stdout, &stderr))
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--dry-run"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
}

func TestRun_DryRunGivesUp(t *testing.T) {
	cfg := emptyConfig(t, "max_attempts: 3\nwaiting_time: 0\n")
	logPath := filepath.Join(t.TempDir(), "run.log")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--dry-run", "--no-color", "--log-file", logPath}, noEnv, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "INFO: dry run")
	assert.Contains(t, stderr.String(), "ERROR: could not establish a Wi-Fi connection after 3 attempt(s)")

	trace, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(trace), "NOTE: the connection may have been established")
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	cfg := emptyConfig(t, "max_attempts: 50\nwaiting_time: 10\nlang: fr_FR\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--dry-run", "--max-attempts", "1", "--waiting-time", "0", "--lang", "en_US"}, noEnv, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "after 1 attempt(s)")
}

func TestOptionsSettings(t *testing.T) {
	msgs, err := messages.Load("")
	require.NoError(t, err)

	cfg := emptyConfig(t, "waiting_time: 7\nbackend: openwrt\nsuperuser: doas\nforce: true\n")

	var out bytes.Buffer
	opts, err := parseFlags([]string{"--config", cfg, "--superuser", "pkexec", "--skip-failures"}, &out, msgs)
	require.NoError(t, err)

	s, err := opts.settings()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, s.Run.WaitingTime)
	assert.Equal(t, config.BackendOpenWrt, s.Backend)
	assert.Equal(t, "pkexec", s.Superuser)
	assert.True(t, s.Run.Force)
	assert.True(t, s.Run.SkipFailures)
	assert.False(t, s.Run.DryRun)
}

func TestParseFlags_NegativeMaxAttempts(t *testing.T) {
	msgs, err := messages.Load("")
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = parseFlags([]string{"--max-attempts", "-1"}, &out, msgs)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "must not be negative")
}

func TestRun_ValidationMessageFollowsLangFlag(t *testing.T) {
	for _, args := range [][]string{
		{"--lang", "fr_FR", "--waiting-time", "nan"},
		{"--waiting-time=nan", "-lang=fr_FR"},
	} {
		var stdout, stderr bytes.Buffer
		code := run(args, noEnv, &stdout, &stderr)

		assert.Equal(t, 2, code, args)
		assert.Contains(t, stderr.String(), "la valeur ne doit pas être NaN", args)
	}
}

func TestLangArg(t *testing.T) {
	assert.Equal(t, "fr_FR", langArg([]string{"--force", "--lang", "fr_FR"}))
	assert.Equal(t, "fr_FR", langArg([]string{"-lang=fr_FR"}))
	assert.Equal(t, "", langArg([]string{"--lang"}))
	assert.Equal(t, "", langArg([]string{"--", "--lang", "fr_FR"}))
	assert.Equal(t, "", langArg([]string{"--language", "fr_FR"}))
}
