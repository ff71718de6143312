// ABOUTME: Tests for calendar-day and month-page helpers
// ABOUTME: Covers month wrapping, leap years, and weekend enumeration across boundaries

package dateutil

import (
	"testing"
	"time"
)

func TestYearMonthNextPrevRoundTrip(t *testing.T) {
	pages := []YearMonth{
		{2024, time.January},
		{2024, time.February},
		{2023, time.December},
		{1999, time.June},
		{2000, time.December},
	}

	for _, ym := range pages {
		if got := ym.Prev().Next(); got != ym {
			t.Errorf("%v.Prev().Next() = %v", ym, got)
		}
		if got := ym.Next().Prev(); got != ym {
			t.Errorf("%v.Next().Prev() = %v", ym, got)
		}
	}
}

func TestYearMonthWrapsYear(t *testing.T) {
	if got, want := (YearMonth{2024, time.January}).Prev(), (YearMonth{2023, time.December}); got != want {
		t.Errorf("Prev() = %v, expected %v", got, want)
	}
	if got, want := (YearMonth{2023, time.December}).Next(), (YearMonth{2024, time.January}); got != want {
		t.Errorf("Next() = %v, expected %v", got, want)
	}
}

func TestIsAtLeastOneMonthApart(t *testing.T) {
	tests := []struct {
		a, b YearMonth
		want bool
	}{
		{YearMonth{2024, time.March}, YearMonth{2024, time.April}, true},
		{YearMonth{2024, time.March}, YearMonth{2024, time.March}, false},
		{YearMonth{2024, time.March}, YearMonth{2024, time.February}, false},
		{YearMonth{2024, time.December}, YearMonth{2025, time.January}, true},
		{YearMonth{2024, time.November}, YearMonth{2025, time.February}, true},
		{YearMonth{2025, time.January}, YearMonth{2024, time.December}, false},
	}

	for _, tc := range tests {
		if got := IsAtLeastOneMonthApart(tc.a, tc.b); got != tc.want {
			t.Errorf("IsAtLeastOneMonthApart(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		page YearMonth
		want int
	}{
		{YearMonth{2024, time.February}, 29},
		{YearMonth{2023, time.February}, 28},
		{YearMonth{2000, time.February}, 29},
		{YearMonth{1900, time.February}, 28},
		{YearMonth{2024, time.April}, 30},
		{YearMonth{2024, time.December}, 31},
	}

	for _, tc := range tests {
		days := DaysInMonth(tc.page)
		if len(days) != tc.want {
			t.Errorf("DaysInMonth(%v) has %d days, expected %d", tc.page, len(days), tc.want)
			continue
		}
		for i, d := range days {
			if d.Page() != tc.page || d.Day != i+1 {
				t.Errorf("DaysInMonth(%v)[%d] = %v", tc.page, i, d)
			}
		}
	}
}

func TestIsWeekend(t *testing.T) {
	// 2024-03-15 is a Friday.
	friday := Date{2024, time.March, 15}
	if IsWeekend(friday) {
		t.Errorf("%v should not be a weekend", friday)
	}
	if !IsWeekend(friday.AddDays(1)) {
		t.Errorf("%v should be a weekend", friday.AddDays(1))
	}
	if !IsWeekend(friday.AddDays(2)) {
		t.Errorf("%v should be a weekend", friday.AddDays(2))
	}
	if IsWeekend(friday.AddDays(3)) {
		t.Errorf("%v should not be a weekend", friday.AddDays(3))
	}
}

func TestWeekendsBetween(t *testing.T) {
	start := Date{2024, time.March, 15}
	end := Date{2024, time.April, 14}

	got := WeekendsBetween(start, end)
	want := []Date{
		{2024, time.March, 16}, {2024, time.March, 17},
		{2024, time.March, 23}, {2024, time.March, 24},
		{2024, time.March, 30}, {2024, time.March, 31},
		{2024, time.April, 6}, {2024, time.April, 7},
		{2024, time.April, 13}, {2024, time.April, 14},
	}

	if len(got) != len(want) {
		t.Fatalf("WeekendsBetween returned %d dates, expected %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeekendsBetween[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestWeekendsBetweenMatchesBruteForce(t *testing.T) {
	// Crosses a leap day and a year boundary.
	start := Date{2023, time.December, 20}
	end := Date{2024, time.March, 5}

	var want []Date
	for tm := start.Time(); !tm.After(end.Time()); tm = tm.AddDate(0, 0, 1) {
		if wd := tm.Weekday(); wd == time.Saturday || wd == time.Sunday {
			want = append(want, FromTime(tm))
		}
	}

	got := WeekendsBetween(start, end)
	if len(got) != len(want) {
		t.Fatalf("got %d weekends, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("weekend %d = %v, expected %v", i, got[i], want[i])
		}
		if i > 0 && !got[i-1].Before(got[i]) {
			t.Errorf("weekends not ascending at %d", i)
		}
	}
}

func TestWeekendsBetweenEdges(t *testing.T) {
	saturday := Date{2024, time.March, 16}
	if got := WeekendsBetween(saturday, saturday); len(got) != 1 || got[0] != saturday {
		t.Errorf("single weekend day range = %v", got)
	}

	thursday := Date{2024, time.March, 14}
	if got := WeekendsBetween(thursday, thursday); len(got) != 0 {
		t.Errorf("single weekday range = %v, expected empty", got)
	}

	if got := WeekendsBetween(saturday, thursday); got == nil || len(got) != 0 {
		t.Errorf("reversed range = %v, expected empty list", got)
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{2024, time.March, 15}
	b := Date{2024, time.March, 16}
	c := Date{2025, time.January, 1}

	if !a.Before(b) || !b.After(a) {
		t.Error("expected a < b")
	}
	if !b.Before(c) {
		t.Error("expected b < c")
	}
	if a.Compare(a) != 0 {
		t.Error("expected a == a")
	}
	if NewDate(2024, time.February, 30) != (Date{2024, time.March, 1}) {
		t.Error("expected NewDate to normalize overflow")
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{Date{2024, time.February, 28}, 1, Date{2024, time.February, 29}},
		{Date{2023, time.February, 28}, 1, Date{2023, time.March, 1}},
		{Date{2023, time.December, 31}, 1, Date{2024, time.January, 1}},
		{Date{2024, time.March, 15}, 30, Date{2024, time.April, 14}},
		{Date{2024, time.March, 15}, -30, Date{2024, time.February, 14}},
	}

	for _, tc := range tests {
		if got := tc.from.AddDays(tc.n); got != tc.want {
			t.Errorf("%v.AddDays(%d) = %v, expected %v", tc.from, tc.n, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (Date{2024, time.March, 15}) {
		t.Errorf("ParseDate = %v", d)
	}

	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}

	ym, err := ParseYearMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseYearMonth: %v", err)
	}
	if ym != (YearMonth{2024, time.February}) {
		t.Errorf("ParseYearMonth = %v", ym)
	}
}

func TestFormatting(t *testing.T) {
	d := Date{2024, time.March, 5}
	if got := d.Format("02/01/2006"); got != "05/03/2024" {
		t.Errorf("Format = %q", got)
	}
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("String = %q", got)
	}
	if got := d.Page().Title(); got != "Mar, 2024" {
		t.Errorf("Title = %q", got)
	}
	if !(Date{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
}
