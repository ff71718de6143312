// ABOUTME: Structured logger construction shared by the CLI, TUI, and MCP server
// ABOUTME: Wraps charmbracelet/log with level parsing and a daterange prefix

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "daterange",
		ReportTimestamp: true,
	}), nil
}

// NewFile returns a logger appending to path. The returned closer must be
// called when the program exits. An empty path discards all output.
func NewFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, io.NopCloser(nil), err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
