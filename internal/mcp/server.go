// ABOUTME: MCP server implementation for daterange
// ABOUTME: Exposes range presets, weekend math, month grids, and click replay to AI agents

package mcp

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/daterange/internal/picker"
	"github.com/harper/daterange/internal/timeutil"
)

// Options configure the server.
type Options struct {
	PredefinedRanges []int
	Layout           string
	Now              func() time.Time
	Logger           *log.Logger
	Version          string
}

// Server wraps the MCP server with daterange-specific context
type Server struct {
	mcpServer *server.MCPServer
	presets   []int
	layout    string
	now       func() time.Time
	logger    *log.Logger
}

// NewServer creates a new MCP server instance
func NewServer(opts Options) (*Server, error) {
	s := &Server{
		presets: opts.PredefinedRanges,
		layout:  opts.Layout,
		now:     opts.Now,
		logger:  opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	// Fail early on a bad preset list rather than on the first tool call.
	if _, err := s.newPicker(nil, time.Time{}); err != nil {
		return nil, err
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	s.mcpServer = server.NewMCPServer(
		"daterange",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio")
	return server.ServeStdio(s.mcpServer)
}

// newPicker builds a fresh picker for one request. A zero today uses the
// server clock.
func (s *Server) newPicker(onSelect picker.SelectFunc, today time.Time) (*picker.Picker, error) {
	now := s.now
	if !today.IsZero() {
		now = func() time.Time { return today }
	}
	p, err := picker.New(picker.Options{
		PredefinedRanges: s.presets,
		OnSelect:         onSelect,
		Layout:           s.layout,
		Now:              now,
		Logger:           s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create picker: %w", err)
	}
	return p, nil
}

// parseToday resolves an optional day reference to a moment on that day. A
// nil or empty reference returns the zero time.
func (s *Server) parseToday(ref *string) (time.Time, error) {
	if ref == nil || *ref == "" {
		return time.Time{}, nil
	}
	d, err := timeutil.ParseDay(*ref, s.now())
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.Clock(d)(), nil
}
