// Package restart drives the network service restarts until a wireless
// connection shows up.
//
// A run goes through three steps: check whether a network is already
// present, restart once if forced, then restart every WaitingTime until the
// probe reports a network, a restart fails, or the context is cancelled.
package restart

import (
	"context"
	"time"

	"reload-wifi/internal/client"
	"reload-wifi/internal/config"
	"reload-wifi/internal/messages"
	"reload-wifi/internal/report"
)

// progressEvery is how often the attempt count is reported
const progressEvery = 10

// Status is the final result of a run
type Status int

const (
	Success Status = iota
	Failure
)

// ExitCode maps the status to the process exit code
func (s Status) ExitCode() int {
	if s == Success {
		return 0
	}
	return 1
}

// Reporter receives user-facing messages
type Reporter interface {
	Report(level report.Level, message string)
}

// State is the mutable state of a run
type State struct {
	Attempts   int
	ShouldStop bool
	Status     Status
}

// Loop restarts the network service until connected
type Loop struct {
	cfg       config.RunConfig
	probe     client.Probe
	restarter client.Restarter
	reporter  Reporter
	msgs      *messages.Catalog
	sleep     func(ctx context.Context, d time.Duration) error

	state State
}

// New creates a Loop for a single run
func New(cfg config.RunConfig, probe client.Probe, restarter client.Restarter, reporter Reporter, msgs *messages.Catalog) *Loop {
	return &Loop{
		cfg:       cfg,
		probe:     probe,
		restarter: restarter,
		reporter:  reporter,
		msgs:      msgs,
		sleep:     sleep,
	}
}

// State returns a copy of the run state
func (l *Loop) State() State {
	return l.state
}

// Run executes the steps and returns the final status.
// Cancelling ctx stops the run as a user interrupt would.
func (l *Loop) Run(ctx context.Context) Status {
	if l.cfg.DryRun {
		l.reporter.Report(report.Info, l.msgs.Get(messages.DryRunMode))
	}

	l.checkAlreadyConnected(ctx)
	if l.state.ShouldStop {
		return l.state.Status
	}

	l.restartIfForced(ctx)
	l.restartUntilConnected(ctx)

	return l.state.Status
}

func (l *Loop) checkAlreadyConnected(ctx context.Context) {
	ssid, ok := l.network(ctx)
	if !ok {
		return
	}

	l.reporter.Report(report.Info, l.msgs.Format(messages.AlreadyEstablished, ssid))
	if !l.cfg.Force {
		l.state.Status = Success
		l.state.ShouldStop = true
	}
}

func (l *Loop) restartIfForced(ctx context.Context) {
	if !l.cfg.Force {
		return
	}

	l.flagNote(messages.ResetAnyway, "force")
	l.attempt(ctx)
}

func (l *Loop) restartUntilConnected(ctx context.Context) {
	interrupted := false

	for !l.state.ShouldStop {
		if ctx.Err() != nil {
			interrupted = true
			break
		}
		if _, ok := l.network(ctx); ok {
			break
		}
		if l.cfg.MaxAttempts > 0 && l.state.Attempts >= l.cfg.MaxAttempts {
			break
		}

		l.attempt(ctx)
	}

	if ctx.Err() != nil {
		interrupted = true
	}

	// Probes below must still run after an interrupt
	ctx = context.WithoutCancel(ctx)

	if interrupted {
		l.reporter.Report(report.Info, l.msgs.Get(messages.UserExitRequested))
		if _, ok := l.network(ctx); !ok {
			l.reporter.Report(report.Note, l.msgs.Get(messages.NoWifiEstablished))
			l.state.Status = Failure
		}
	}

	if ssid, ok := l.network(ctx); ok {
		l.reporter.Report(report.Success, l.msgs.Format(messages.Established, ssid, l.state.Attempts))
		l.state.Status = Success
	} else {
		l.reporter.Report(report.Error, l.msgs.Format(messages.CantEstablish, l.state.Attempts))
		l.reporter.Report(report.Note, l.msgs.Get(messages.NoteInstantDisconnection))
		l.state.Status = Failure
	}

	l.state.ShouldStop = true
}

// attempt restarts the service once, then waits unless connected or stopping
func (l *Loop) attempt(ctx context.Context) {
	// Interrupted before the restart could start: nothing to count
	if ctx.Err() != nil {
		l.state.ShouldStop = true
		return
	}

	l.state.Attempts++

	switch l.restarter.Restart(ctx) {
	case client.Cancelled:
		l.state.ShouldStop = true
		return
	case client.Failed:
		l.reporter.Report(report.Error, l.msgs.Get(messages.RestartFailure))
		if !l.cfg.SkipFailures {
			l.state.Status = Failure
			l.state.ShouldStop = true
			return
		}
		l.flagNote(messages.IgnoredFailure, "skip-failures")
	}

	if l.state.Attempts%progressEvery == 0 {
		l.reporter.Report(report.Info, l.msgs.Format(messages.AttemptsReport, l.state.Attempts))
	}

	if _, ok := l.network(ctx); ok {
		l.state.Status = Success
		l.state.ShouldStop = true
		return
	}

	// An interrupted sleep is noticed by the caller through ctx
	_ = l.sleep(ctx, l.cfg.WaitingTime)
}

// network returns the current SSID. Probe errors count as no connection.
func (l *Loop) network(ctx context.Context) (string, bool) {
	ssid, err := l.probe.CurrentNetwork(ctx)
	if err != nil || ssid == "" {
		return "", false
	}
	return ssid, true
}

func (l *Loop) flagNote(key messages.Key, flag string) {
	l.reporter.Report(report.Note, l.msgs.Format(messages.FlagNote, l.msgs.Get(key), flag))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
