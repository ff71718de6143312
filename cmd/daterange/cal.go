// ABOUTME: Calendar command for daterange CLI
// ABOUTME: Prints month grids with weekends, today, and an optional selection highlighted

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/grid"
)

var (
	calStart  string
	calEnd    string
	calHover  string
	calMonths int
)

var calCmd = &cobra.Command{
	Use:   "cal [YYYY-MM]",
	Short: "Print month calendars",
	Long: `Print one or more month grids starting on Sunday.

Filler days from adjacent months are dimmed, today is underlined, and
--start/--end mark a selection. Weekdays strictly inside the selection
(or up to --hover while no end is set) are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := dateutil.Today(nowFunc())
		page := today.Page()
		if len(args) == 1 {
			var err error
			page, err = dateutil.ParseYearMonth(args[0])
			if err != nil {
				return err
			}
		}

		var sel grid.Selection
		var err error
		if sel.Start, err = parseOptionalDate(calStart); err != nil {
			return err
		}
		if sel.End, err = parseOptionalDate(calEnd); err != nil {
			return err
		}
		if sel.HoverEnd, err = parseOptionalDate(calHover); err != nil {
			return err
		}
		if calMonths < 1 {
			return fmt.Errorf("--months must be at least 1")
		}

		out := cmd.OutOrStdout()
		for i := 0; i < calMonths; i++ {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeCalendar(out, grid.Month{Page: page, Selection: sel, Today: today})
			page = page.Next()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calCmd)
	calCmd.Flags().StringVar(&calStart, "start", "", "selected start day (YYYY-MM-DD)")
	calCmd.Flags().StringVar(&calEnd, "end", "", "selected end day (YYYY-MM-DD)")
	calCmd.Flags().StringVar(&calHover, "hover", "", "provisional end day while no end is set (YYYY-MM-DD)")
	calCmd.Flags().IntVar(&calMonths, "months", 1, "number of consecutive months to print")
}

func writeCalendar(w io.Writer, m grid.Month) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	title := m.Title()
	width := grid.Cols*3 - 1
	pad := (width - len(title)) / 2
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", max(pad, 0)), bold(title))

	labels := grid.WeekdayLabels()
	heads := make([]string, 0, grid.Cols)
	for col, label := range labels {
		if grid.IsWeekendColumn(col) {
			label = faint(label)
		}
		heads = append(heads, label)
	}
	fmt.Fprintln(w, strings.Join(heads, " "))

	cells := m.Cells()
	for row := 0; row < grid.Rows; row++ {
		days := make([]string, 0, grid.Cols)
		for col := 0; col < grid.Cols; col++ {
			days = append(days, calendarCell(cells[row*grid.Cols+col]))
		}
		fmt.Fprintln(w, strings.Join(days, " "))
	}
}

func calendarCell(c grid.Cell) string {
	text := fmt.Sprintf("%2d", c.Date.Day)
	if c.Kind != grid.InMonth {
		return color.New(color.Faint).Sprint(text)
	}

	var attrs []color.Attribute
	switch {
	case c.Selected:
		attrs = append(attrs, color.Bold, color.ReverseVideo)
	case c.InPreview:
		attrs = append(attrs, color.FgCyan)
	case c.Weekend:
		attrs = append(attrs, color.FgRed)
	}
	if c.Today {
		attrs = append(attrs, color.Underline)
	}
	if len(attrs) == 0 {
		return text
	}
	return color.New(attrs...).Sprint(text)
}
