// ABOUTME: MCP resource providers for daterange
// ABOUTME: Exposes read-only views of the configured presets and the current month's weekends

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/daterange/internal/dateutil"
)

const (
	presetsURI  = "daterange://presets"
	weekendsURI = "daterange://weekends/current-month"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Today       string `json:"today"`
	Count       int    `json:"count"`
	ResourceURI string `json:"resource_uri"`
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         presetsURI,
			Name:        "Predefined Ranges",
			Description: "The four range shortcuts with labels and the dates each selects today",
			MIMEType:    "application/json",
		},
		s.handlePresetsResource,
	)

	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         weekendsURI,
			Name:        "Weekends This Month",
			Description: "Every Saturday and Sunday of the current month",
			MIMEType:    "application/json",
		},
		s.handleWeekendsResource,
	)
}

func (s *Server) handlePresetsResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := s.newPicker(nil, s.now())
	if err != nil {
		return nil, err
	}

	presets := presetOutputs(p)
	return resourceJSON(presetsURI, ResourceData{
		Metadata: ResourceMetadata{
			Today:       p.Today().String(),
			Count:       len(presets),
			ResourceURI: presetsURI,
		},
		Data: presets,
		Links: map[string]string{
			"apply": "tool:apply_preset",
		},
	})
}

func (s *Server) handleWeekendsResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	today := dateutil.Today(s.now())
	page := today.Page()
	days := dateutil.DaysInMonth(page)

	weekends := []string{}
	for _, d := range dateutil.WeekendsBetween(days[0], days[len(days)-1]) {
		weekends = append(weekends, d.String())
	}

	return resourceJSON(weekendsURI, ResourceData{
		Metadata: ResourceMetadata{
			Today:       today.String(),
			Count:       len(weekends),
			ResourceURI: weekendsURI,
		},
		Data: map[string]interface{}{
			"month":    page.String(),
			"weekends": weekends,
		},
		Links: map[string]string{
			"grid": "tool:month_grid",
		},
	})
}

func resourceJSON(uri string, data ResourceData) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
