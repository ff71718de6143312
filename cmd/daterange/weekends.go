// ABOUTME: Weekends command for daterange CLI
// ABOUTME: Lists every Saturday and Sunday between two dates

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/dateutil"
)

var weekendsJSON bool

var weekendsCmd = &cobra.Command{
	Use:   "weekends <start> <end>",
	Short: "List weekend days in a range",
	Long:  "List every Saturday and Sunday between two YYYY-MM-DD dates, both inclusive.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := dateutil.ParseDate(args[0])
		if err != nil {
			return err
		}
		end, err := dateutil.ParseDate(args[1])
		if err != nil {
			return err
		}
		return writeWeekends(cmd.OutOrStdout(), start, end, currentConfig().GetDateFormat(), weekendsJSON)
	},
}

func init() {
	rootCmd.AddCommand(weekendsCmd)
	weekendsCmd.Flags().BoolVar(&weekendsJSON, "json", false, "print as a JSON array of YYYY-MM-DD strings")
}

func writeWeekends(w io.Writer, start, end dateutil.Date, layout string, asJSON bool) error {
	if start.After(end) {
		return fmt.Errorf("start %s is after end %s", start, end)
	}

	weekends := dateutil.WeekendsBetween(start, end)
	if asJSON {
		days := make([]string, 0, len(weekends))
		for _, d := range weekends {
			days = append(days, d.String())
		}
		return writeJSON(w, days)
	}

	faint := color.New(color.Faint).SprintFunc()
	for _, d := range weekends {
		fmt.Fprintf(w, "%s  %s\n", d.Format(layout), faint(d.Weekday()))
	}
	fmt.Fprintf(w, "%s\n", faint(fmt.Sprintf("%d weekend days", len(weekends))))
	return nil
}
