// ABOUTME: Relative day references used by CLI flags and MCP arguments
// ABOUTME: Resolves words like today, yesterday, week, and month against a clock

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/daterange/internal/dateutil"
)

// StartOfWeek returns the most recent Sunday on or before d.
// Note: Week starts on Sunday
func StartOfWeek(d dateutil.Date) dateutil.Date {
	return d.AddDays(-int(d.Weekday()))
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d dateutil.Date) dateutil.Date {
	return d.Page().First()
}

// ParseDay resolves a day reference relative to now.
// Supported values: "today", "yesterday", "tomorrow", "week" (start of this
// week), "month" (start of this month), or a YYYY-MM-DD date.
func ParseDay(s string, now time.Time) (dateutil.Date, error) {
	today := dateutil.Today(now)

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "week":
		return StartOfWeek(today), nil
	case "month":
		return StartOfMonth(today), nil
	}

	d, err := dateutil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("invalid day %q (use today, yesterday, tomorrow, week, month, or YYYY-MM-DD)", s)
	}
	return d, nil
}

// Clock returns a clock pinned to noon local time of d. Noon keeps the day
// stable across daylight saving shifts.
func Clock(d dateutil.Date) func() time.Time {
	noon := d.Time().Add(12 * time.Hour)
	return func() time.Time { return noon }
}
