// ABOUTME: Tests for the HTML snapshot
// ABOUTME: Parses rendered markup back and checks classes and data attributes

package htmlview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/picker"
)

func newPicker(t *testing.T) *picker.Picker {
	t.Helper()
	p, err := picker.New(picker.Options{
		Now: func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local) },
	})
	require.NoError(t, err)
	return p
}

func parse(t *testing.T, p *picker.Picker) *html.Node {
	t.Helper()
	out, err := String(p)
	require.NoError(t, err)
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func byDate(doc *html.Node, date string) *html.Node {
	nodes := findAll(doc, func(n *html.Node) bool { return attrOf(n, "data-date") == date })
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrOf(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func TestRenderInitialState(t *testing.T) {
	doc := parse(t, newPicker(t))

	inputs := findAll(doc, func(n *html.Node) bool { return n.Data == "input" })
	require.Len(t, inputs, 1)
	assert.Equal(t, picker.Placeholder, attrOf(inputs[0], "value"))

	calendars := findAll(doc, func(n *html.Node) bool { return hasClass(n, "calendar") })
	require.Len(t, calendars, 2)
	assert.Equal(t, "2024-03", attrOf(calendars[0], "data-month"))
	assert.Equal(t, "2024-04", attrOf(calendars[1], "data-month"))

	days := findAll(calendars[0], func(n *html.Node) bool { return hasClass(n, "day") })
	assert.Len(t, days, 42)

	today := byDate(doc, "2024-03-15")
	require.NotNil(t, today)
	assert.True(t, hasClass(today, "current-day"))
	assert.True(t, hasClass(today, "weekday"))

	saturday := byDate(doc, "2024-03-16")
	require.NotNil(t, saturday)
	assert.True(t, hasClass(saturday, "weekend"))

	ok := findAll(doc, func(n *html.Node) bool { return hasClass(n, "ok-button") })
	require.Len(t, ok, 1)
	assert.True(t, hasClass(ok[0], "ok-button-disabled"))

	presets := findAll(doc, func(n *html.Node) bool { return hasClass(n, "predefined-ranges-button") })
	require.Len(t, presets, 4)
	assert.Equal(t, "Today", presets[0].FirstChild.Data)
	assert.Equal(t, "-7", attrOf(presets[1], "data-offset"))
}

func TestRenderPreview(t *testing.T) {
	p := newPicker(t)
	p.Open()
	p.PickDate(dateutil.NewDate(2024, time.March, 13))
	p.Hover(dateutil.NewDate(2024, time.March, 20))
	doc := parse(t, p)

	assert.True(t, hasClass(byDate(doc, "2024-03-13"), "selected"))

	highlighted := func(date string) bool {
		spans := findAll(byDate(doc, date), func(n *html.Node) bool { return n.Data == "span" })
		return len(spans) == 1 && hasClass(spans[0], "highlighted-day")
	}
	assert.True(t, highlighted("2024-03-14"))
	assert.True(t, highlighted("2024-03-19"))
	assert.False(t, highlighted("2024-03-16"), "weekends are never highlighted")
	assert.False(t, highlighted("2024-03-13"))
	assert.False(t, highlighted("2024-03-20"))

	surface := findAll(doc, func(n *html.Node) bool { return hasClass(n, "date-range-picker") })
	require.Len(t, surface, 1)
	assert.Equal(t, "true", attrOf(surface[0], "data-open"))
}

func TestRenderConfirmed(t *testing.T) {
	p := newPicker(t)
	p.PickDate(dateutil.NewDate(2024, time.March, 13))
	p.PickDate(dateutil.NewDate(2024, time.March, 20))
	require.True(t, p.Confirm())
	doc := parse(t, p)

	inputs := findAll(doc, func(n *html.Node) bool { return n.Data == "input" })
	require.Len(t, inputs, 1)
	assert.Equal(t, "13/03/2024 - 20/03/2024", attrOf(inputs[0], "value"))

	closers := findAll(doc, func(n *html.Node) bool { return hasClass(n, "close") })
	assert.Len(t, closers, 1)

	ok := findAll(doc, func(n *html.Node) bool { return hasClass(n, "ok-button") })
	require.Len(t, ok, 1)
	assert.False(t, hasClass(ok[0], "ok-button-disabled"))
}

func TestDayClasses(t *testing.T) {
	p := newPicker(t)
	p.PickDate(dateutil.NewDate(2024, time.March, 15))
	m := p.Grid(picker.Left)

	i, ok := m.IndexOf(dateutil.NewDate(2024, time.March, 15))
	require.True(t, ok)
	c, _ := m.Cell(i)
	assert.Equal(t, "day selected weekday current-day", DayClasses(c))
}
