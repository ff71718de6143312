// ABOUTME: Range picker state machine owning selection, panes, and surface visibility
// ABOUTME: Coordinates two month grids and reports confirmed ranges to the host callback

package picker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/events"
	"github.com/harper/daterange/internal/grid"
)

// Pane identifies one of the two calendars.
type Pane int

const (
	Left Pane = iota
	Right
)

// Default texts and layout of the display field.
const (
	DefaultLayout    = "02/01/2006"
	Placeholder      = "Select Date Range"
	EmptyDateDisplay = "dd/mm/yyyy"
)

// DefaultPredefinedRanges are the shortcut offsets used when the host
// supplies none.
var DefaultPredefinedRanges = []int{0, -7, -30, 30}

// ErrPresetCount is returned when a host supplies other than four shortcuts.
var ErrPresetCount = errors.New("predefined ranges must contain exactly 4 offsets")

// SelectFunc receives a finalized range and the weekends inside it.
type SelectFunc func(rng [2]dateutil.Date, weekends []dateutil.Date)

// Options configure a Picker.
type Options struct {
	// PredefinedRanges holds four day offsets relative to today.
	// Nil selects DefaultPredefinedRanges.
	PredefinedRanges []int
	// OnSelect is invoked once per confirmation.
	OnSelect SelectFunc
	// Layout formats dates in the display field. Defaults to DefaultLayout.
	Layout string
	// Now is the clock used for "today". Defaults to time.Now.
	Now    func() time.Time
	Logger *log.Logger
}

// Selection is a snapshot of the selection state.
type Selection struct {
	Start     dateutil.Date
	End       dateutil.Date
	HoverEnd  dateutil.Date
	Confirmed bool
}

// Complete reports whether both ends are set.
func (s Selection) Complete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Picker owns all mutable state of the widget. Grids receive snapshots and
// report intent back through callbacks bound to the picker's transitions.
type Picker struct {
	sel      Selection
	panes    [2]dateutil.YearMonth
	open     bool
	presets  []int
	onSelect SelectFunc
	layout   string
	now      func() time.Time
	logger   *log.Logger

	field   events.Rect
	surface events.Rect
	sub     *events.Subscription
}

// New returns a closed picker showing today's month and the next one.
func New(opts Options) (*Picker, error) {
	presets := opts.PredefinedRanges
	if presets == nil {
		presets = DefaultPredefinedRanges
	}
	if len(presets) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrPresetCount, len(presets))
	}

	p := &Picker{
		presets:  append([]int(nil), presets...),
		onSelect: opts.OnSelect,
		layout:   opts.Layout,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if p.layout == "" {
		p.layout = DefaultLayout
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}

	page := p.Today().Page()
	p.panes = [2]dateutil.YearMonth{page, page.Next()}

	return p, nil
}

// Today returns the current calendar day from the picker's clock.
func (p *Picker) Today() dateutil.Date {
	return dateutil.Today(p.now())
}

// Selection returns the current selection state.
func (p *Picker) Selection() Selection {
	return p.sel
}

// Panes returns the pages shown by the left and right calendars.
func (p *Picker) Panes() [2]dateutil.YearMonth {
	return p.panes
}

// Layout returns the date layout of the display field.
func (p *Picker) Layout() string {
	return p.layout
}

// IsOpen reports whether the picker surface is visible.
func (p *Picker) IsOpen() bool {
	return p.open
}

// Open shows the surface. Called when the display field gains focus or is
// clicked.
func (p *Picker) Open() {
	if !p.open {
		p.logger.Debug("picker opened")
	}
	p.open = true
}

// Close hides the surface.
func (p *Picker) Close() {
	if p.open {
		p.logger.Debug("picker closed")
	}
	p.open = false
}

// PickDate applies a manual date pick.
func (p *Picker) PickDate(d dateutil.Date) {
	p.sel.Confirmed = false

	switch {
	case p.sel.Start.IsZero():
		p.sel.Start = d
	case !p.sel.End.IsZero():
		p.sel.Start = d
		p.sel.End = dateutil.Date{}
		p.sel.HoverEnd = dateutil.Date{}
	case d.Before(p.sel.Start):
		p.sel.End = p.sel.Start
		p.sel.Start = d
		p.sel.HoverEnd = dateutil.Date{}
	default:
		p.sel.End = d
		p.sel.HoverEnd = dateutil.Date{}
	}

	p.logger.Debug("date picked", "date", d, "start", p.sel.Start, "end", p.sel.End)
}

// Hover records a preview end date. It only applies while a start is set,
// the end is not, and d is a weekday.
func (p *Picker) Hover(d dateutil.Date) {
	if p.sel.Start.IsZero() || !p.sel.End.IsZero() || dateutil.IsWeekend(d) {
		return
	}
	p.sel.HoverEnd = d
}

// CanConfirm reports whether OK would finalize a range.
func (p *Picker) CanConfirm() bool {
	return p.sel.Complete()
}

// Confirm finalizes the selected range. It is a no-op returning false when
// the range is incomplete.
func (p *Picker) Confirm() bool {
	if !p.sel.Complete() {
		return false
	}
	p.finalize(p.sel.Start, p.sel.End)
	return true
}

// ApplyPreset selects the range for a day offset relative to today and
// finalizes it immediately. Weekend endpoints are allowed.
func (p *Picker) ApplyPreset(offset int) {
	start, end := PresetRange(p.Today(), offset)
	p.sel.Start = start
	p.sel.End = end
	p.sel.HoverEnd = dateutil.Date{}
	p.logger.Debug("preset applied", "offset", offset, "label", PresetLabel(offset))
	p.finalize(start, end)
}

func (p *Picker) finalize(start, end dateutil.Date) {
	weekends := dateutil.WeekendsBetween(start, end)
	if p.onSelect != nil {
		p.onSelect([2]dateutil.Date{start, end}, weekends)
	}
	p.sel.Confirmed = true
	p.logger.Info("range selected", "start", start, "end", end, "weekends", len(weekends))
	p.Close()
}

// Clear drops the selection. The surface stays closed.
func (p *Picker) Clear() {
	p.sel = Selection{}
	p.logger.Debug("selection cleared")
}

// DisplayText is the content of the display field.
func (p *Picker) DisplayText() string {
	if p.sel.Confirmed && p.sel.Complete() {
		return p.sel.Start.Format(p.layout) + " - " + p.sel.End.Format(p.layout)
	}
	return Placeholder
}

// HeaderText is the range summary shown at the top of the open surface.
func (p *Picker) HeaderText() string {
	return p.formatOrEmpty(p.sel.Start) + " - " + p.formatOrEmpty(p.sel.End)
}

func (p *Picker) formatOrEmpty(d dateutil.Date) string {
	if d.IsZero() {
		return EmptyDateDisplay
	}
	return d.Format(p.layout)
}

// Grid returns the snapshot of one pane with callbacks bound to this picker.
func (p *Picker) Grid(pane Pane) grid.Month {
	return grid.Month{
		Page: p.panes[pane],
		Selection: grid.Selection{
			Start:    p.sel.Start,
			End:      p.sel.End,
			HoverEnd: p.sel.HoverEnd,
		},
		Today: p.Today(),
		Callbacks: grid.Callbacks{
			DateClicked: p.PickDate,
			Hovered:     p.Hover,
			MonthNav:    func(dir grid.Direction) { p.NavigateMonth(pane, dir) },
			YearNav:     func(dir grid.Direction) { p.NavigateYear(pane, dir) },
		},
	}
}

// NavigateMonth moves one pane by a month and re-snaps its sibling when
// needed.
func (p *Picker) NavigateMonth(pane Pane, dir grid.Direction) {
	page := p.panes[pane]
	if dir == grid.Back {
		page = page.Prev()
	} else {
		page = page.Next()
	}
	p.movePane(pane, dir, page)
}

// NavigateYear moves one pane by a year and re-snaps its sibling when needed.
func (p *Picker) NavigateYear(pane Pane, dir grid.Direction) {
	p.movePane(pane, dir, p.panes[pane].AddYears(int(dir)))
}

// ShowMonth jumps both panes so the left one shows page.
func (p *Picker) ShowMonth(page dateutil.YearMonth) {
	p.panes = [2]dateutil.YearMonth{page, page.Next()}
	p.logger.Debug("panes moved", "left", p.panes[Left], "right", p.panes[Right])
}

// movePane only re-snaps in the two directions that could put the right pane
// on or before the left one. Other moves may leave the panes non-adjacent.
func (p *Picker) movePane(pane Pane, dir grid.Direction, page dateutil.YearMonth) {
	p.panes[pane] = page

	switch {
	case pane == Left && dir == grid.Forward:
		if !dateutil.IsAtLeastOneMonthApart(p.panes[Left], p.panes[Right]) {
			p.panes[Right] = p.panes[Left].Next()
		}
	case pane == Right && dir == grid.Back:
		if !dateutil.IsAtLeastOneMonthApart(p.panes[Left], p.panes[Right]) {
			p.panes[Left] = p.panes[Right].Prev()
		}
	}

	p.logger.Debug("panes moved", "left", p.panes[Left], "right", p.panes[Right])
}

// Mount subscribes the picker to document clicks so clicks outside the
// surface and the display field close it.
func (p *Picker) Mount(doc *events.Document) {
	p.Unmount()
	p.sub = doc.Subscribe(p.handleDocumentClick)
}

// Unmount releases the document subscription.
func (p *Picker) Unmount() {
	p.sub.Release()
	p.sub = nil
}

// Mounted reports whether the picker currently listens for document clicks.
func (p *Picker) Mounted() bool {
	return p.sub != nil
}

// SetBounds tells the picker where its display field and surface are drawn.
func (p *Picker) SetBounds(field, surface events.Rect) {
	p.field = field
	p.surface = surface
}

func (p *Picker) handleDocumentClick(c events.Click) {
	if !p.open {
		return
	}
	if p.surface.Contains(c.At) || p.field.Contains(c.At) {
		return
	}
	p.Close()
}
