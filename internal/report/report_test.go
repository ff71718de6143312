// ABOUTME: Tests for range reports
// ABOUTME: Checks day counts, weekend strings, and markdown output

package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/daterange/internal/dateutil"
)

func TestNew(t *testing.T) {
	start := dateutil.NewDate(2024, time.March, 15)
	end := dateutil.NewDate(2024, time.April, 14)

	r := New([2]dateutil.Date{start, end}, dateutil.WeekendsBetween(start, end))

	assert.Equal(t, "2024-03-15", r.Start)
	assert.Equal(t, "2024-04-14", r.End)
	assert.Equal(t, 31, r.Days)
	assert.Len(t, r.Weekends, 10)
	assert.Equal(t, 21, r.Weekdays)
	assert.Equal(t, "2024-03-16", r.Weekends[0])

	gotStart, gotEnd := r.Range()
	assert.Equal(t, start, gotStart)
	assert.Equal(t, end, gotEnd)
}

func TestNewSingleDay(t *testing.T) {
	d := dateutil.NewDate(2024, time.March, 13)
	r := New([2]dateutil.Date{d, d}, dateutil.WeekendsBetween(d, d))

	assert.Equal(t, 1, r.Days)
	assert.Equal(t, 1, r.Weekdays)
	assert.NotNil(t, r.Weekends)
	assert.Empty(t, r.Weekends)
}

func TestJSONShape(t *testing.T) {
	d := dateutil.NewDate(2024, time.March, 16)
	r := New([2]dateutil.Date{d, d}, []dateutil.Date{d})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-16","end":"2024-03-16","days":1,"weekdays":0,"weekends":["2024-03-16"]}`, string(data))
}

func TestMarkdown(t *testing.T) {
	start := dateutil.NewDate(2024, time.March, 15)
	end := dateutil.NewDate(2024, time.March, 18)
	r := New([2]dateutil.Date{start, end}, dateutil.WeekendsBetween(start, end))

	md := r.Markdown("02/01/2006")
	assert.Contains(t, md, "**15/03/2024** to **18/03/2024**")
	assert.Contains(t, md, "- Days: 4")
	assert.Contains(t, md, "| 16/03/2024 | Saturday |")
	assert.Contains(t, md, "| 17/03/2024 | Sunday |")
}

func TestMarkdownNoWeekends(t *testing.T) {
	d := dateutil.NewDate(2024, time.March, 13)
	r := New([2]dateutil.Date{d, d}, nil)

	assert.Contains(t, r.Markdown("2006-01-02"), "_None_")
}
