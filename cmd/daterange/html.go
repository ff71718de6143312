// ABOUTME: HTML command for daterange CLI
// ABOUTME: Prints a snapshot of the picker as markup for embedding in web pages

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/htmlview"
	"github.com/harper/daterange/internal/picker"
)

var (
	htmlMonth   string
	htmlStart   string
	htmlEnd     string
	htmlHover   string
	htmlToday   string
	htmlOpen    bool
	htmlConfirm bool
)

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Print the picker as HTML",
	Long: `Render the picker in a given state as HTML markup.

Days carry data-date attributes and the classes day, selected, weekend,
weekday, current-day, and highlighted-day so a stylesheet can style them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := clockFor(htmlToday)
		if err != nil {
			return err
		}
		opts := pickerOptions()
		opts.Now = now

		st := htmlState{open: htmlOpen, confirm: htmlConfirm}
		if htmlMonth != "" {
			if st.month, err = dateutil.ParseYearMonth(htmlMonth); err != nil {
				return err
			}
		}
		if st.start, err = parseOptionalDate(htmlStart); err != nil {
			return err
		}
		if st.end, err = parseOptionalDate(htmlEnd); err != nil {
			return err
		}
		if st.hover, err = parseOptionalDate(htmlHover); err != nil {
			return err
		}

		p, err := buildPicker(opts, st)
		if err != nil {
			return err
		}
		return htmlview.Render(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().StringVar(&htmlMonth, "month", "", "month shown in the left pane (YYYY-MM, default: start or today)")
	htmlCmd.Flags().StringVar(&htmlStart, "start", "", "picked start day (YYYY-MM-DD)")
	htmlCmd.Flags().StringVar(&htmlEnd, "end", "", "picked end day (YYYY-MM-DD)")
	htmlCmd.Flags().StringVar(&htmlHover, "hover", "", "day under the pointer (YYYY-MM-DD)")
	htmlCmd.Flags().StringVar(&htmlToday, "today", "", "reference day instead of the current date (today, yesterday, tomorrow, week, month, or YYYY-MM-DD)")
	htmlCmd.Flags().BoolVar(&htmlOpen, "open", true, "render the surface as open")
	htmlCmd.Flags().BoolVar(&htmlConfirm, "confirm", false, "press OK after picking")
}

type htmlState struct {
	month             dateutil.YearMonth
	start, end, hover dateutil.Date
	open, confirm     bool
}

// buildPicker replays a state through the picker's own transitions.
func buildPicker(opts picker.Options, st htmlState) (*picker.Picker, error) {
	p, err := picker.New(opts)
	if err != nil {
		return nil, err
	}

	switch {
	case st.month != (dateutil.YearMonth{}):
		p.ShowMonth(st.month)
	case !st.start.IsZero():
		p.ShowMonth(st.start.Page())
	}

	if st.open {
		p.Open()
	}
	if !st.start.IsZero() {
		p.PickDate(st.start)
	}
	if !st.end.IsZero() {
		p.PickDate(st.end)
	}
	if !st.hover.IsZero() {
		p.Hover(st.hover)
	}
	if st.confirm {
		p.Confirm()
		if st.open {
			p.Open()
		}
	}
	return p, nil
}
