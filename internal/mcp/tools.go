// ABOUTME: MCP tool definitions and handlers for date range operations
// ABOUTME: Provides tools for presets, weekend enumeration, month grids, and replaying picks

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/grid"
	"github.com/harper/daterange/internal/picker"
	"github.com/harper/daterange/internal/report"
)

// Type definitions for input/output structures

type PresetOutput struct {
	Offset int    `json:"offset"`
	Label  string `json:"label"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type ListPresetsInput struct {
	Today *string `json:"today,omitempty"`
}

type ListPresetsOutput struct {
	Today   string         `json:"today"`
	Presets []PresetOutput `json:"presets"`
}

type ApplyPresetInput struct {
	Offset int     `json:"offset"`
	Today  *string `json:"today,omitempty"`
}

type RangeOutput struct {
	Label   string         `json:"label,omitempty"`
	Display string         `json:"display"`
	Range   *report.Result `json:"range"`
}

type WeekendsBetweenInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeekendsBetweenOutput struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Weekends []string `json:"weekends"`
	Count    int      `json:"count"`
}

type MonthGridInput struct {
	Month    string  `json:"month"`
	Start    *string `json:"start,omitempty"`
	End      *string `json:"end,omitempty"`
	HoverEnd *string `json:"hover_end,omitempty"`
	Today    *string `json:"today,omitempty"`
}

type CellOutput struct {
	Date        string `json:"date"`
	Day         int    `json:"day"`
	Kind        string `json:"kind"`
	Selected    bool   `json:"selected,omitempty"`
	Weekend     bool   `json:"weekend,omitempty"`
	Today       bool   `json:"today,omitempty"`
	InPreview   bool   `json:"in_preview,omitempty"`
	Interactive bool   `json:"interactive"`
}

type MonthGridOutput struct {
	Month    string       `json:"month"`
	Title    string       `json:"title"`
	Weekdays []string     `json:"weekdays"`
	Cells    []CellOutput `json:"cells"`
}

type SelectRangeInput struct {
	Clicks []string `json:"clicks"`
	Today  *string  `json:"today,omitempty"`
}

type SelectRangeOutput struct {
	Accepted  []string       `json:"accepted"`
	Ignored   []string       `json:"ignored"`
	Start     string         `json:"start,omitempty"`
	End       string         `json:"end,omitempty"`
	Confirmed bool           `json:"confirmed"`
	Display   string         `json:"display"`
	Range     *report.Result `json:"range,omitempty"`
}

var kindNames = map[grid.Kind]string{
	grid.Leading:  "leading",
	grid.InMonth:  "in_month",
	grid.Trailing: "trailing",
}

// Tool registration

func (s *Server) registerTools() {
	s.registerListPresetsTool()
	s.registerApplyPresetTool()
	s.registerWeekendsBetweenTool()
	s.registerMonthGridTool()
	s.registerSelectRangeTool()
}

func (s *Server) registerListPresetsTool() {
	tool := mcp.Tool{
		Name:        "list_presets",
		Description: "List the four predefined range shortcuts with their labels and the concrete dates each one selects today. Use this before apply_preset to see what each shortcut means.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"today": map[string]interface{}{
					"type":        "string",
					"description": "Optional reference day used instead of the current date: today, yesterday, tomorrow, week, month, or YYYY-MM-DD. Example: '2024-03-15'",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListPresets)
}

func (s *Server) registerApplyPresetTool() {
	tool := mcp.Tool{
		Name:        "apply_preset",
		Description: "Select a range relative to today by a day offset and finalize it. Offset 0 is today, -1 yesterday, 1 tomorrow, -7 the last 7 days, 30 the next 30 days. Returns the range, its weekend days, and the text the display field would show.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Day offset relative to today. Example: -7",
				},
				"today": map[string]interface{}{
					"type":        "string",
					"description": "Optional reference day used instead of the current date: today, yesterday, tomorrow, week, month, or YYYY-MM-DD. Example: '2024-03-15'",
				},
			},
			Required: []string{"offset"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleApplyPreset)
}

func (s *Server) registerWeekendsBetweenTool() {
	tool := mcp.Tool{
		Name:        "weekends_between",
		Description: "List every Saturday and Sunday between two dates, both inclusive, in ascending order. Returns an empty list when start is after end.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"start": map[string]interface{}{
					"type":        "string",
					"description": "First day of the range (YYYY-MM-DD). Example: '2024-03-15'",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the range (YYYY-MM-DD). Example: '2024-04-14'",
				},
			},
			Required: []string{"start", "end"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleWeekendsBetween)
}

func (s *Server) registerMonthGridTool() {
	tool := mcp.Tool{
		Name:        "month_grid",
		Description: "Lay out one month as a 6x7 calendar grid starting on Sunday, including filler days from adjacent months. Each cell reports whether it is selected, a weekend, today, inside the preview span, and whether it accepts clicks. Pass start, end, or hover_end to see how a selection renders.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"month": map[string]interface{}{
					"type":        "string",
					"description": "Month to lay out (YYYY-MM). Example: '2024-03'",
				},
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Optional selected start day (YYYY-MM-DD)",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "Optional selected end day (YYYY-MM-DD)",
				},
				"hover_end": map[string]interface{}{
					"type":        "string",
					"description": "Optional provisional end day under the pointer (YYYY-MM-DD). Ignored when end is set.",
				},
				"today": map[string]interface{}{
					"type":        "string",
					"description": "Optional reference day used to mark the current day: today, yesterday, tomorrow, week, month, or YYYY-MM-DD",
				},
			},
			Required: []string{"month"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleMonthGrid)
}

func (s *Server) registerSelectRangeTool() {
	tool := mcp.Tool{
		Name:        "select_range",
		Description: "Replay day clicks through the picker as a user would, then press OK. Clicks on weekend days are ignored. The first click sets the start, the second the end (swapping if earlier), and a third click starts over. Returns which clicks were accepted and the confirmed range if both ends were set.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"clicks": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Days clicked in order (YYYY-MM-DD). Example: ['2024-03-20', '2024-03-13']",
				},
				"today": map[string]interface{}{
					"type":        "string",
					"description": "Optional reference day used instead of the current date: today, yesterday, tomorrow, week, month, or YYYY-MM-DD",
				},
			},
			Required: []string{"clicks"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSelectRange)
}

// Tool handlers

func (s *Server) handleListPresets(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListPresetsInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	today, err := s.parseToday(input.Today)
	if err != nil {
		return nil, err
	}
	p, err := s.newPicker(nil, today)
	if err != nil {
		return nil, err
	}

	return jsonResult(ListPresetsOutput{
		Today:   p.Today().String(),
		Presets: presetOutputs(p),
	})
}

func presetOutputs(p *picker.Picker) []PresetOutput {
	presets := p.Presets()
	out := make([]PresetOutput, 0, len(presets))
	for _, preset := range presets {
		start, end := picker.PresetRange(p.Today(), preset.Offset)
		out = append(out, PresetOutput{
			Offset: preset.Offset,
			Label:  preset.Label,
			Start:  start.String(),
			End:    end.String(),
		})
	}
	return out
}

func (s *Server) handleApplyPreset(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ApplyPresetInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	today, err := s.parseToday(input.Today)
	if err != nil {
		return nil, err
	}

	var result *report.Result
	p, err := s.newPicker(func(rng [2]dateutil.Date, weekends []dateutil.Date) {
		r := report.New(rng, weekends)
		result = &r
	}, today)
	if err != nil {
		return nil, err
	}

	p.ApplyPreset(input.Offset)

	return jsonResult(RangeOutput{
		Label:   picker.PresetLabel(input.Offset),
		Display: p.DisplayText(),
		Range:   result,
	})
}

func (s *Server) handleWeekendsBetween(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input WeekendsBetweenInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	start, err := dateutil.ParseDate(input.Start)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseDate(input.End)
	if err != nil {
		return nil, err
	}

	weekends := dateutil.WeekendsBetween(start, end)
	out := WeekendsBetweenOutput{
		Start:    start.String(),
		End:      end.String(),
		Weekends: make([]string, 0, len(weekends)),
		Count:    len(weekends),
	}
	for _, d := range weekends {
		out.Weekends = append(out.Weekends, d.String())
	}
	return jsonResult(out)
}

func (s *Server) handleMonthGrid(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input MonthGridInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	page, err := dateutil.ParseYearMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var sel grid.Selection
	for _, opt := range []struct {
		in  *string
		out *dateutil.Date
	}{
		{input.Start, &sel.Start},
		{input.End, &sel.End},
		{input.HoverEnd, &sel.HoverEnd},
	} {
		if opt.in == nil || *opt.in == "" {
			continue
		}
		if *opt.out, err = dateutil.ParseDate(*opt.in); err != nil {
			return nil, err
		}
	}

	todayTime, err := s.parseToday(input.Today)
	if err != nil {
		return nil, err
	}
	if todayTime.IsZero() {
		todayTime = s.now()
	}

	m := grid.Month{Page: page, Selection: sel, Today: dateutil.Today(todayTime)}
	labels := grid.WeekdayLabels()
	out := MonthGridOutput{
		Month:    page.String(),
		Title:    m.Title(),
		Weekdays: labels[:],
		Cells:    make([]CellOutput, 0, grid.Size),
	}
	for _, c := range m.Cells() {
		out.Cells = append(out.Cells, CellOutput{
			Date:        c.Date.String(),
			Day:         c.Date.Day,
			Kind:        kindNames[c.Kind],
			Selected:    c.Selected,
			Weekend:     c.Weekend,
			Today:       c.Today,
			InPreview:   c.InPreview,
			Interactive: c.Interactive(),
		})
	}
	return jsonResult(out)
}

func (s *Server) handleSelectRange(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SelectRangeInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	today, err := s.parseToday(input.Today)
	if err != nil {
		return nil, err
	}

	var result *report.Result
	p, err := s.newPicker(func(rng [2]dateutil.Date, weekends []dateutil.Date) {
		r := report.New(rng, weekends)
		result = &r
	}, today)
	if err != nil {
		return nil, err
	}
	p.Open()

	out := SelectRangeOutput{Accepted: []string{}, Ignored: []string{}}
	for _, raw := range input.Clicks {
		d, err := dateutil.ParseDate(raw)
		if err != nil {
			return nil, err
		}

		// Clicks go through a grid showing the clicked month so the same
		// guards apply as for a pointer.
		m := p.Grid(picker.Left)
		m.Page = d.Page()
		i, _ := m.IndexOf(d)
		if m.Click(i) {
			out.Accepted = append(out.Accepted, d.String())
		} else {
			out.Ignored = append(out.Ignored, d.String())
		}
	}

	sel := p.Selection()
	if !sel.Start.IsZero() {
		out.Start = sel.Start.String()
	}
	if !sel.End.IsZero() {
		out.End = sel.End.String()
	}
	out.Confirmed = p.Confirm()
	out.Display = p.DisplayText()
	out.Range = result

	s.logger.Debug("select_range replayed", "accepted", len(out.Accepted), "ignored", len(out.Ignored), "confirmed", out.Confirmed)
	return jsonResult(out)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
