package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reload-wifi/internal/config"
	"reload-wifi/internal/messages"
)

// options holds the parsed command line
type options struct {
	waitingTime  secondsFlag
	force        bool
	skipFailures bool
	dryRun       bool
	maxAttempts  int
	backend      string
	probe        string
	superuser    string
	lang         string
	logFile      string
	noColor      bool
	configPath   string
	showVersion  bool

	// set records the flags given explicitly, which win over the config file
	set map[string]bool
}

// secondsFlag is a number of seconds without NaN, infinities or negatives
type secondsFlag struct {
	value float64
	msgs  *messages.Catalog
}

func (s *secondsFlag) String() string {
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}

func (s *secondsFlag) Set(raw string) error {
	value, err := config.ParseWaitingTime(raw)
	if err != nil {
		return errors.New(s.msgs.Get(validationMessage(err)))
	}
	s.value = value
	return nil
}

func validationMessage(err error) messages.Key {
	switch {
	case errors.Is(err, config.ErrNaN):
		return messages.ErrorValueNaN
	case errors.Is(err, config.ErrInf):
		return messages.ErrorValueInf
	case errors.Is(err, config.ErrNegative):
		return messages.ErrorValueNegative
	case errors.Is(err, config.ErrTooLarge):
		return messages.ErrorValueTooLarge
	default:
		return messages.ErrorValueInvalid
	}
}

// langArg returns the value of -lang/--lang in args, if any, before the
// flags are parsed
func langArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "lang" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// parseFlags parses args. Errors have already been printed to output.
func parseFlags(args []string, output io.Writer, msgs *messages.Catalog) (*options, error) {
	opts := &options{
		waitingTime: secondsFlag{value: config.DefaultWaitingTime, msgs: msgs},
		set:         make(map[string]bool),
	}

	fs := flag.NewFlagSet("reload-wifi", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&opts.waitingTime, "waiting-time", "Seconds to wait between two restarts")
	fs.BoolVar(&opts.force, "force", false, "Restart once even if a connection is already established")
	fs.BoolVar(&opts.skipFailures, "skip-failures", false, "Keep going when the restart command fails")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Simulate restarts without touching the system")
	fs.IntVar(&opts.maxAttempts, "max-attempts", 0, "Give up after this many restarts (0 for no limit)")
	fs.StringVar(&opts.backend, "backend", string(config.BackendAuto), "Network service: auto, networkmanager, networking, openwrt")
	fs.StringVar(&opts.probe, "probe", string(config.ProbeIwgetid), "Connection probe: iwgetid, nmcli")
	fs.StringVar(&opts.superuser, "superuser", config.DefaultSuperuser, "Command used to gain root rights (ignored as root)")
	fs.StringVar(&opts.lang, "lang", "", "Message language, e.g. fr_FR (default: from the environment)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append a trace of the run to this file")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to configuration file")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		fmt.Fprintln(output, err)
		fs.Usage()
		return nil, err
	}
	if opts.maxAttempts < 0 {
		err := fmt.Errorf("invalid value %d for flag -max-attempts: %s", opts.maxAttempts, msgs.Get(messages.ErrorValueNegative))
		fmt.Fprintln(output, err)
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

// settings merges defaults, the config file and explicit flags, in that order
func (o *options) settings() (config.Settings, error) {
	s := config.Defaults()

	file, err := config.LoadFile(o.configPath, o.set["config"])
	if err != nil {
		return s, err
	}
	if err := file.Apply(&s); err != nil {
		return s, fmt.Errorf("config %s: %w", o.configPath, err)
	}

	if o.set["waiting-time"] {
		s.Run.WaitingTime = config.Seconds(o.waitingTime.value)
	}
	if o.set["max-attempts"] {
		s.Run.MaxAttempts = o.maxAttempts
	}
	if o.set["backend"] {
		if s.Backend, err = config.ParseBackend(o.backend); err != nil {
			return s, err
		}
	}
	if o.set["probe"] {
		if s.Probe, err = config.ParseProbe(o.probe); err != nil {
			return s, err
		}
	}
	if o.set["superuser"] {
		s.Superuser = o.superuser
	}
	if o.set["lang"] {
		s.Lang = o.lang
	}
	if o.set["log-file"] {
		s.LogFile = o.logFile
	}

	s.Run.Force = s.Run.Force || o.force
	s.Run.SkipFailures = s.Run.SkipFailures || o.skipFailures
	s.Run.DryRun = o.dryRun
	s.NoColor = s.NoColor || o.noColor

	return s, nil
}
