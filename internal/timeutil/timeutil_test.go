// ABOUTME: Tests for relative day references
// ABOUTME: Verifies words and ISO dates resolve against a fixed clock

package timeutil

import (
	"testing"
	"time"

	"github.com/harper/daterange/internal/dateutil"
)

var friday = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input string
		want  dateutil.Date
	}{
		{"today", dateutil.NewDate(2024, time.March, 15)},
		{"Yesterday", dateutil.NewDate(2024, time.March, 14)},
		{"tomorrow", dateutil.NewDate(2024, time.March, 16)},
		{"week", dateutil.NewDate(2024, time.March, 10)},
		{"month", dateutil.NewDate(2024, time.March, 1)},
		{" 2024-02-29 ", dateutil.NewDate(2024, time.February, 29)},
	}

	for _, tc := range tests {
		got, err := ParseDay(tc.input, friday)
		if err != nil {
			t.Errorf("ParseDay(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDay(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, input := range []string{"", "fortnight", "15/03/2024", "2023-02-29"} {
		if _, err := ParseDay(input, friday); err == nil {
			t.Errorf("ParseDay(%q) expected error", input)
		}
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := dateutil.NewDate(2024, time.March, 17)
	if got := StartOfWeek(sunday); got != sunday {
		t.Errorf("StartOfWeek(Sunday) = %s, want same day", got)
	}
}

func TestStartOfWeekAcrossMonth(t *testing.T) {
	got := StartOfWeek(dateutil.NewDate(2024, time.March, 2))
	if want := dateutil.NewDate(2024, time.February, 25); got != want {
		t.Errorf("StartOfWeek = %s, want %s", got, want)
	}
}

func TestClock(t *testing.T) {
	d := dateutil.NewDate(2024, time.December, 31)
	if got := dateutil.Today(Clock(d)()); got != d {
		t.Errorf("Clock day = %s, want %s", got, d)
	}
}
