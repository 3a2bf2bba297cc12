// Command reload-wifi restarts the network service until a Wi-Fi connection
// is established.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"reload-wifi/internal/client"
	"reload-wifi/internal/config"
	"reload-wifi/internal/messages"
	"reload-wifi/internal/report"
	"reload-wifi/internal/restart"
	"reload-wifi/internal/runlog"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when connected, 1 on failure,
// 2 on invalid arguments or configuration
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	// Flag validation messages already honor --lang
	msgs, err := messages.Load(messages.ResolveLocale(langArg(args), getenv))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	opts, err := parseFlags(args, stderr, msgs)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "reload-wifi %s\n", version)
		return 0
	}

	settings, err := opts.settings()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if settings.Lang != "" {
		if msgs, err = messages.Load(messages.ResolveLocale(settings.Lang, getenv)); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	var reportOpts []report.Option
	if settings.NoColor || getenv("NO_COLOR") != "" {
		reportOpts = append(reportOpts, report.WithoutColor())
	}
	if settings.LogFile != "" {
		logger, closer, err := runlog.Open(runlog.Path(settings.LogFile))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer closer.Close()
		reportOpts = append(reportOpts, report.WithMirror(logger))
	}
	reporter := report.New(stdout, stderr, reportOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second Ctrl-C kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	probe, restarter := wire(ctx, settings)

	return restart.New(settings.Run, probe, restarter, reporter, msgs).Run(ctx).ExitCode()
}

// wire picks the probe and restarter for the host, or their dry-run doubles
func wire(ctx context.Context, settings config.Settings) (client.Probe, client.Restarter) {
	runner := client.ExecRunner{}
	probe := client.NewProbe(settings.Probe, runner, settings.Run.DryRun)

	if settings.Run.DryRun {
		return probe, client.DryRunRestarter{}
	}

	backend := settings.Backend
	if backend == config.BackendAuto {
		backend = client.NewDetector(runner).Detect(ctx)
	}

	return probe, client.NewServiceRestarter(runner, backend, settings.Superuser, os.Geteuid())
}
