// Package runlog appends a plain-text trace of each run to a log file.
package runlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// DefaultDir is where relative log file names are placed
const DefaultDir = "/var/log/reload-wifi"

// Path resolves a bare file name against DefaultDir. Names with a directory
// part, including "./run.log", are kept as given.
func Path(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(DefaultDir, name)
}

// Open creates the log directory if needed and opens path for appending.
// Lines written through the returned logger carry a fresh run ID.
func Open(path string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, ulid.Make()), f, nil
}

// New returns a logger writing to w, prefixed with the run ID
func New(w io.Writer, id ulid.ULID) *log.Logger {
	return log.New(w, fmt.Sprintf("[%s] ", id), log.LstdFlags|log.Lmsgprefix)
}
