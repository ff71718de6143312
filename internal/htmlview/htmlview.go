// ABOUTME: Renders a picker snapshot as HTML markup for embedding in web pages
// ABOUTME: Builds an x/net/html node tree mirroring the input field, calendars, and presets

package htmlview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/harper/daterange/internal/grid"
	"github.com/harper/daterange/internal/picker"
)

const (
	calendarIcon = "\U0001F5D3"
	closeIcon    = "×"
)

// Render writes the markup of p's current state to w.
func Render(w io.Writer, p *picker.Picker) error {
	if err := html.Render(w, Build(p)); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// String returns the markup of p's current state.
func String(p *picker.Picker) (string, error) {
	var b strings.Builder
	if err := Render(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Build returns the root node of the widget.
func Build(p *picker.Picker) *html.Node {
	root := elem("div", attr("class", "daterange"))
	root.AppendChild(inputContainer(p))
	root.AppendChild(surface(p))
	return root.Node
}

func inputContainer(p *picker.Picker) *html.Node {
	box := elem("div", attr("class", "input-container"))
	box.AppendChild(elem("input",
		attr("id", "input"),
		attr("class", "input"),
		attr("value", p.DisplayText()),
		attr("readonly", ""),
	).Node)

	if p.Selection().Confirmed {
		box.AppendChild(elem("label", attr("class", "close")).append(text(closeIcon)).Node)
	} else {
		box.AppendChild(elem("label", attr("for", "input")).append(text(calendarIcon)).Node)
	}
	return box.Node
}

func surface(p *picker.Picker) *html.Node {
	s := elem("div",
		attr("class", "date-range-picker"),
		attr("data-open", strconv.FormatBool(p.IsOpen())),
	)
	s.AppendChild(elem("div", attr("class", "date-format")).append(text(p.HeaderText())).Node)

	panes := elem("div", attr("style", "display: flex"))
	panes.AppendChild(elem("div", attr("class", "left-calendar")).append(calendar(p.Grid(picker.Left))).Node)
	panes.AppendChild(elem("div", attr("class", "right-calendar")).append(calendar(p.Grid(picker.Right))).Node)
	s.AppendChild(panes.Node)

	s.AppendChild(presets(p))
	return s.Node
}

func presets(p *picker.Picker) *html.Node {
	container := elem("div", attr("class", "predefined-ranges-container"))
	list := elem("div", attr("class", "predefined-ranges"))
	for _, preset := range p.Presets() {
		list.AppendChild(elem("button",
			attr("class", "predefined-ranges-button"),
			attr("data-offset", strconv.Itoa(preset.Offset)),
		).append(text(preset.Label)).Node)
	}
	container.AppendChild(list.Node)

	okClass := "ok-button"
	if !p.CanConfirm() {
		okClass += " ok-button-disabled"
	}
	container.AppendChild(elem("button", attr("class", okClass)).append(text("OK")).Node)
	return container.Node
}

func calendar(m grid.Month) *html.Node {
	cal := elem("div", attr("class", "calendar"), attr("data-month", m.Page.String()))

	nav := elem("div", attr("class", "month-year"))
	nav.AppendChild(navButton("year_button", "year-back", "<<"))
	nav.AppendChild(navButton("month_button", "month-back", "<"))
	nav.AppendChild(elem("span").append(text(m.Title())).Node)
	nav.AppendChild(navButton("month_button", "month-forward", ">"))
	nav.AppendChild(navButton("year_button", "year-forward", ">>"))
	cal.AppendChild(nav.Node)

	weekdays := elem("div", attr("class", "weekdays"))
	for col, label := range grid.WeekdayLabels() {
		class := ""
		if grid.IsWeekendColumn(col) {
			class = "weekend"
		}
		weekdays.AppendChild(elem("div", attr("class", class)).append(text(label)).Node)
	}
	cal.AppendChild(weekdays.Node)

	days := elem("div", attr("class", "days"))
	for _, c := range m.Cells() {
		days.AppendChild(day(c))
	}
	cal.AppendChild(days.Node)

	return cal.Node
}

func navButton(kind, action, label string) *html.Node {
	return elem("button",
		attr("class", "calendar_button "+kind),
		attr("data-nav", action),
	).append(text(label)).Node
}

func day(c grid.Cell) *html.Node {
	number := text(strconv.Itoa(c.Date.Day))
	if c.Kind != grid.InMonth {
		return elem("div", attr("class", "empty day")).append(number).Node
	}

	span := elem("span", attr("class", spanClasses(c))).append(number)
	return elem("div",
		attr("class", DayClasses(c)),
		attr("data-date", c.Date.String()),
	).append(span.Node).Node
}

// DayClasses returns the class list of an in-month day.
func DayClasses(c grid.Cell) string {
	classes := []string{"day"}
	if c.Selected {
		classes = append(classes, "selected")
	}
	if c.Weekend {
		classes = append(classes, "weekend")
	} else {
		classes = append(classes, "weekday")
	}
	if c.Today {
		classes = append(classes, "current-day")
	}
	return strings.Join(classes, " ")
}

func spanClasses(c grid.Cell) string {
	var classes []string
	if !c.Weekend {
		classes = append(classes, "weekday-text")
	}
	if c.InPreview {
		classes = append(classes, "highlighted-day")
	}
	return strings.Join(classes, " ")
}

type node struct {
	*html.Node
}

func elem(tag string, attrs ...html.Attribute) node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, a := range attrs {
		if a.Key == "class" && a.Val == "" {
			continue
		}
		n.Attr = append(n.Attr, a)
	}
	return node{n}
}

func (n node) append(child *html.Node) node {
	n.AppendChild(child)
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
