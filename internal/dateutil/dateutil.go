// ABOUTME: Calendar-day and month-page values plus the date math the picker needs
// ABOUTME: Provides month grids, adjacent months, weekend checks, and weekend enumeration

package dateutil

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ISOLayout is the layout used for parsing and printing dates in machine
// facing surfaces (CLI arguments, MCP, JSON).
const ISOLayout = "2006-01-02"

// Date is a calendar day. Time of day never matters and two Dates are equal
// when they name the same day. The zero Date means "unset".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year/month/day, normalizing overflow the same
// way time.Date does (e.g. Feb 30 becomes Mar 1 or Mar 2).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now in local time.
func Today(now time.Time) Date {
	return FromTime(now.Local())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return FromTime(t), nil
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight local time of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// AddDays returns d shifted by n calendar days. Arithmetic is done in UTC so
// daylight saving transitions never skip or repeat a day.
func (d Date) AddDays(n int) Date {
	return FromTime(d.utc().AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// Page returns the month page d belongs to.
func (d Date) Page() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.utc().Format(layout)
}

func (d Date) String() string {
	return d.Format(ISOLayout)
}

// YearMonth is a calendar page. Navigation returns new values.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Next returns the following page, wrapping December into January of the
// next year.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Prev returns the preceding page, wrapping January into December of the
// previous year.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// AddYears returns the same month n years away.
func (ym YearMonth) AddYears(n int) YearMonth {
	return YearMonth{Year: ym.Year + n, Month: ym.Month}
}

func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Before reports whether ym is an earlier page than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// First returns the first day of the page.
func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Len returns the number of days in the page.
func (ym YearMonth) Len() int {
	return datetime.DaysInMonth(ym.Year, datetime.Month(ym.Month))
}

// Title returns the short heading shown above a month grid, e.g. "Mar, 2024".
func (ym YearMonth) Title() string {
	return fmt.Sprintf("%s, %d", ym.Month.String()[:3], ym.Year)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// IsAtLeastOneMonthApart reports whether b is at least one page after a.
func IsAtLeastOneMonthApart(a, b YearMonth) bool {
	return b.index()-a.index() >= 1
}

// DaysInMonth returns every day of the page, day 1 first.
func DaysInMonth(ym YearMonth) []Date {
	n := ym.Len()
	days := make([]Date, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, Date{Year: ym.Year, Month: ym.Month, Day: day})
	}
	return days
}

var weekendOnly = datetime.Constraints{Weekends: true}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Date) bool {
	return weekendOnly.Include(d.utc())
}

// WeekendsBetween returns every Saturday and Sunday in [start, end] in
// ascending order. It returns an empty list when start is after end.
func WeekendsBetween(start, end Date) []Date {
	weekends := []Date{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if IsWeekend(d) {
			weekends = append(weekends, d)
		}
	}
	return weekends
}
