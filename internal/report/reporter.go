// Package report prints leveled, colored messages for the user.
package report

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level is the severity of a report
type Level int

const (
	Error Level = iota
	Success
	Info
	Note
)

type stream int

const (
	stdout stream = iota
	stderr
)

type levelData struct {
	label  string
	color  lipgloss.ANSIColor
	stream stream
}

var levels = [...]levelData{
	Error:   {label: "ERROR", color: 1, stream: stderr},
	Success: {label: "SUCCESS", color: 2, stream: stdout},
	Info:    {label: "INFO", color: 4, stream: stdout},
	Note:    {label: "NOTE", color: 5, stream: stderr},
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levels) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].label
}

// Reporter writes reports to stdout or stderr depending on their level
type Reporter struct {
	out    [2]io.Writer
	styles [len(levels)]lipgloss.Style
	mirror *log.Logger
}

// Option configures a Reporter
type Option func(*Reporter, [2]*lipgloss.Renderer)

// WithoutColor disables styling regardless of the terminal
func WithoutColor() Option {
	return func(_ *Reporter, renderers [2]*lipgloss.Renderer) {
		for _, r := range renderers {
			r.SetColorProfile(termenv.Ascii)
		}
	}
}

// WithMirror copies every report, uncolored, to logger
func WithMirror(logger *log.Logger) Option {
	return func(r *Reporter, _ [2]*lipgloss.Renderer) {
		r.mirror = logger
	}
}

// New creates a Reporter. Colors follow each stream's terminal capabilities.
func New(stdoutW, stderrW io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: [2]io.Writer{stdoutW, stderrW}}
	renderers := [2]*lipgloss.Renderer{
		lipgloss.NewRenderer(stdoutW),
		lipgloss.NewRenderer(stderrW),
	}

	for _, opt := range opts {
		opt(r, renderers)
	}

	for i, data := range levels {
		r.styles[i] = renderers[data.stream].NewStyle().Bold(true).Foreground(data.color)
	}

	return r
}

// Report prints message at the given level. Write errors are ignored.
func (r *Reporter) Report(level Level, message string) {
	if level < 0 || int(level) >= len(levels) {
		level = Info
	}
	data := levels[level]

	fmt.Fprintf(r.out[data.stream], "%s %s\n", r.styles[level].Render(data.label+":"), message)

	if r.mirror != nil {
		r.mirror.Printf("%s: %s", data.label, message)
	}
}
