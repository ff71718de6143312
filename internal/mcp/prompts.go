// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides a workflow template for planning time off around weekends

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerPlanLeavePrompt()
}

func (s *Server) registerPlanLeavePrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "plan-leave",
			Description: "Plan a block of leave and count how many working days it costs once weekends are excluded",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "month",
					Description: "Month to plan in (YYYY-MM). Defaults to the current month",
					Required:    false,
				},
			},
		},
		s.handlePlanLeave,
	)
}

func (s *Server) handlePlanLeave(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	month := "the current month"
	if req.Params.Arguments != nil {
		if m, ok := req.Params.Arguments["month"]; ok && m != "" {
			month = m
		}
	}

	template := fmt.Sprintf(`# Plan Leave

Help me choose a block of days off in %s.

1. Call month_grid for the month to see its layout. Weekend cells are not
   clickable, so a range always starts and ends on a weekday.
2. Propose a start and end day. Use month_grid with start and hover_end to
   preview the span.
3. Call select_range with the two days to confirm it.
4. Report the total days, the weekend days inside the range (from the
   result's weekends list), and the working days it costs.

If a shortcut fits, list_presets and apply_preset are faster.`, month)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Leave planning workflow for %s", month),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
