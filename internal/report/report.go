// ABOUTME: Report of a confirmed date range for hosts and the terminal
// ABOUTME: Provides a JSON-tagged result and a markdown summary for glamour

package report

import (
	"fmt"
	"strings"

	"github.com/harper/daterange/internal/dateutil"
)

// Result describes a finalized range.
type Result struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Days     int      `json:"days"`
	Weekdays int      `json:"weekdays"`
	Weekends []string `json:"weekends"`

	start, end dateutil.Date
	weekends   []dateutil.Date
}

// New builds a Result from the values handed to the picker's host callback.
func New(rng [2]dateutil.Date, weekends []dateutil.Date) Result {
	start, end := rng[0], rng[1]
	days := int(end.Time().Sub(start.Time()).Hours()/24+0.5) + 1

	r := Result{
		Start:    start.String(),
		End:      end.String(),
		Days:     days,
		Weekdays: days - len(weekends),
		Weekends: make([]string, 0, len(weekends)),
		start:    start,
		end:      end,
		weekends: weekends,
	}
	for _, d := range weekends {
		r.Weekends = append(r.Weekends, d.String())
	}
	return r
}

// Range returns the start and end dates.
func (r Result) Range() (dateutil.Date, dateutil.Date) {
	return r.start, r.end
}

// WeekendDates returns the weekend days inside the range.
func (r Result) WeekendDates() []dateutil.Date {
	return r.weekends
}

// Markdown renders a summary with dates formatted by layout.
func (r Result) Markdown(layout string) string {
	var b strings.Builder

	b.WriteString("# Selected range\n\n")
	fmt.Fprintf(&b, "**%s** to **%s**\n\n", r.start.Format(layout), r.end.Format(layout))
	fmt.Fprintf(&b, "- Days: %d\n", r.Days)
	fmt.Fprintf(&b, "- Weekdays: %d\n", r.Weekdays)
	fmt.Fprintf(&b, "- Weekend days: %d\n\n", len(r.weekends))

	b.WriteString("## Weekends\n\n")
	if len(r.weekends) == 0 {
		b.WriteString("_None_\n")
		return b.String()
	}

	b.WriteString("| Date | Day |\n| --- | --- |\n")
	for _, d := range r.weekends {
		fmt.Fprintf(&b, "| %s | %s |\n", d.Format(layout), d.Weekday())
	}
	return b.String()
}
