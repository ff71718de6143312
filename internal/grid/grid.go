// ABOUTME: Presentation model of a single month page laid out as a 6x7 grid
// ABOUTME: Classifies each day and reports clicks, hovers, and navigation upward

package grid

import (
	"github.com/harper/daterange/internal/dateutil"
)

// Grid dimensions. Weeks start on Sunday.
const (
	Rows = 6
	Cols = 7
	Size = Rows * Cols
)

// Kind tells whether a cell belongs to the page or is a filler from an
// adjacent month.
type Kind int

const (
	Leading Kind = iota
	InMonth
	Trailing
)

// Direction of a navigation request.
type Direction int

const (
	Back    Direction = -1
	Forward Direction = 1
)

// Cell is one square of the grid.
type Cell struct {
	Date      dateutil.Date
	Kind      Kind
	Selected  bool
	Weekend   bool
	Today     bool
	InPreview bool
}

// Interactive reports whether the cell accepts clicks and hovers.
func (c Cell) Interactive() bool {
	return c.Kind == InMonth && !c.Weekend
}

// Selection is the read-only view of the picker state a grid needs.
type Selection struct {
	Start    dateutil.Date
	End      dateutil.Date
	HoverEnd dateutil.Date
}

// Callbacks carry user intent out of the grid. Nil callbacks are ignored.
type Callbacks struct {
	DateClicked func(dateutil.Date)
	Hovered     func(dateutil.Date)
	MonthNav    func(Direction)
	YearNav     func(Direction)
}

// Month is an immutable snapshot of one pane.
type Month struct {
	Page      dateutil.YearMonth
	Selection Selection
	Today     dateutil.Date
	Callbacks Callbacks
}

var weekdayLabels = [Cols]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// WeekdayLabels returns the column headings, Sunday first.
func WeekdayLabels() [Cols]string {
	return weekdayLabels
}

// IsWeekendColumn reports whether column col holds Saturdays or Sundays.
func IsWeekendColumn(col int) bool {
	return col == 0 || col == Cols-1
}

// Title returns the page heading, e.g. "Mar, 2024".
func (m Month) Title() string {
	return m.Page.Title()
}

func (m Month) leading() int {
	return int(m.Page.First().Weekday())
}

// Cells lays out the page: fillers from the previous month, the page's own
// days, then fillers from the next month up to Size cells.
func (m Month) Cells() []Cell {
	cells := make([]Cell, 0, Size)

	first := m.Page.First()
	for i := m.leading(); i > 0; i-- {
		cells = append(cells, Cell{Date: first.AddDays(-i), Kind: Leading})
	}

	for _, d := range dateutil.DaysInMonth(m.Page) {
		weekend := dateutil.IsWeekend(d)
		cells = append(cells, Cell{
			Date:      d,
			Kind:      InMonth,
			Selected:  m.isSelected(d),
			Weekend:   weekend,
			Today:     d == m.Today,
			InPreview: !weekend && m.inPreview(d),
		})
	}

	next := m.Page.Next().First()
	for i := 0; len(cells) < Size; i++ {
		cells = append(cells, Cell{Date: next.AddDays(i), Kind: Trailing})
	}

	return cells
}

// Cell returns the cell at index i (row-major).
func (m Month) Cell(i int) (Cell, bool) {
	if i < 0 || i >= Size {
		return Cell{}, false
	}
	return m.Cells()[i], true
}

// IndexOf returns the index of the in-month cell holding d.
func (m Month) IndexOf(d dateutil.Date) (int, bool) {
	if d.Page() != m.Page || d.Day < 1 || d.Day > m.Page.Len() {
		return 0, false
	}
	return m.leading() + d.Day - 1, true
}

func (m Month) isSelected(d dateutil.Date) bool {
	sel := m.Selection
	return (!sel.Start.IsZero() && d == sel.Start) || (!sel.End.IsZero() && d == sel.End)
}

// inPreview reports whether d lies strictly between the start and the
// effective end (End, or HoverEnd while End is unset). A boundary before the
// start previews the range backwards.
func (m Month) inPreview(d dateutil.Date) bool {
	start := m.Selection.Start
	boundary := m.Selection.End
	if boundary.IsZero() {
		boundary = m.Selection.HoverEnd
	}
	if start.IsZero() || boundary.IsZero() {
		return false
	}
	if boundary.Before(start) {
		return d.After(boundary) && d.Before(start)
	}
	return d.After(start) && d.Before(boundary)
}

// Click reports a click on cell i. Fillers and weekends are inert.
func (m Month) Click(i int) bool {
	c, ok := m.Cell(i)
	if !ok || !c.Interactive() || m.Callbacks.DateClicked == nil {
		return false
	}
	m.Callbacks.DateClicked(c.Date)
	return true
}

// Hover reports the pointer resting over cell i. Only weekdays of the page
// are reported.
func (m Month) Hover(i int) bool {
	c, ok := m.Cell(i)
	if !ok || !c.Interactive() || m.Callbacks.Hovered == nil {
		return false
	}
	m.Callbacks.Hovered(c.Date)
	return true
}

// NavigateMonth asks the owner to move this pane by one month.
func (m Month) NavigateMonth(dir Direction) {
	if m.Callbacks.MonthNav != nil {
		m.Callbacks.MonthNav(dir)
	}
}

// NavigateYear asks the owner to move this pane by one year.
func (m Month) NavigateYear(dir Direction) {
	if m.Callbacks.YearNav != nil {
		m.Callbacks.YearNav(dir)
	}
}

// Position returns the row and column of cell i.
func Position(i int) (row, col int) {
	return i / Cols, i % Cols
}

// Index returns the cell index at row/col.
func Index(row, col int) (int, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, false
	}
	return row*Cols + col, true
}
