// ABOUTME: Screen geometry of the picker view and mouse hit-testing
// ABOUTME: Maps terminal cells to the field, navigation arrows, days, presets, and OK

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/daterange/internal/events"
	"github.com/harper/daterange/internal/grid"
	"github.com/harper/daterange/internal/picker"
)

// Rows are relative to the top of the surface unless noted.
const (
	fieldRow   = 0 // absolute
	surfaceTop = 2 // absolute

	headerRow   = 0
	navRow      = 2
	weekdayRow  = 3
	gridTop     = 4
	presetRow   = gridTop + grid.Rows + 1
	okRow       = presetRow + 1
	surfaceRows = okRow + 1

	cellWidth    = 4
	paneWidth    = grid.Cols * cellWidth
	paneGap      = 4
	surfaceWidth = 2*paneWidth + paneGap

	titleWidth = paneWidth - 10
	okLabel    = "[ OK ]"
	clearLabel = "×"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetField
	targetClear
	targetMonthNav
	targetYearNav
	targetCell
	targetPreset
	targetOK
)

// target is what a terminal cell belongs to.
type target struct {
	kind  targetKind
	pane  picker.Pane
	dir   grid.Direction
	index int
}

type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// layout is the geometry of one frame.
type layout struct {
	fieldInner int
	showClear  bool
	open       bool
	presets    []span
}

func newLayout(p *picker.Picker) layout {
	return layout{
		fieldInner: fieldInner(p),
		showClear:  p.Selection().Confirmed,
		open:       p.IsOpen(),
		presets:    presetSpans(p.Presets()),
	}
}

func fieldInner(p *picker.Picker) int {
	return max(lipgloss.Width(picker.Placeholder), lipgloss.Width(p.DisplayText()))
}

func (l layout) fieldWidth() int {
	return l.fieldInner + 4
}

func (l layout) fieldRect() events.Rect {
	return events.Rect{X: 0, Y: fieldRow, W: l.fieldWidth(), H: 1}
}

func (l layout) surfaceRect() events.Rect {
	return events.Rect{X: 0, Y: surfaceTop, W: surfaceWidth, H: surfaceRows}
}

func paneX(pane picker.Pane) int {
	return int(pane) * (paneWidth + paneGap)
}

func presetButton(i int, label string) string {
	return fmt.Sprintf("[%d %s]", i+1, label)
}

func presetSpans(presets []picker.Preset) []span {
	spans := make([]span, 0, len(presets))
	x := 0
	for i, preset := range presets {
		w := lipgloss.Width(presetButton(i, preset.Label))
		spans = append(spans, span{start: x, end: x + w})
		x += w + 1
	}
	return spans
}

// navLine renders "<< < Title > >>" padded to the pane width.
func navLine(title string) string {
	pad := titleWidth - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	centered := strings.Repeat(" ", left) + title + strings.Repeat(" ", pad-left)
	return "<< < " + centered + " > >>"
}

// navTarget maps a column inside the nav line to an arrow.
func navTarget(lx int) (kind targetKind, dir grid.Direction, ok bool) {
	switch {
	case lx == 0 || lx == 1:
		return targetYearNav, grid.Back, true
	case lx == 3:
		return targetMonthNav, grid.Back, true
	case lx == paneWidth-4:
		return targetMonthNav, grid.Forward, true
	case lx == paneWidth-2 || lx == paneWidth-1:
		return targetYearNav, grid.Forward, true
	}
	return targetNone, 0, false
}

// paneAt returns the pane under x and the column inside it.
func paneAt(x int) (picker.Pane, int, bool) {
	switch {
	case x >= 0 && x < paneWidth:
		return picker.Left, x, true
	case x >= paneX(picker.Right) && x < surfaceWidth:
		return picker.Right, x - paneX(picker.Right), true
	}
	return picker.Left, 0, false
}

func (l layout) hit(x, y int) target {
	if y == fieldRow {
		switch {
		case x >= 0 && x < l.fieldWidth():
			return target{kind: targetField}
		case l.showClear && x == l.fieldWidth()+1:
			return target{kind: targetClear}
		}
		return target{}
	}

	if !l.open {
		return target{}
	}
	ry := y - surfaceTop
	if ry < 0 || ry >= surfaceRows {
		return target{}
	}

	switch {
	case ry == navRow:
		pane, lx, ok := paneAt(x)
		if !ok {
			return target{}
		}
		if kind, dir, ok := navTarget(lx); ok {
			return target{kind: kind, pane: pane, dir: dir}
		}

	case ry >= gridTop && ry < gridTop+grid.Rows:
		pane, lx, ok := paneAt(x)
		if !ok {
			return target{}
		}
		if i, ok := grid.Index(ry-gridTop, lx/cellWidth); ok {
			return target{kind: targetCell, pane: pane, index: i}
		}

	case ry == presetRow:
		for i, s := range l.presets {
			if s.contains(x) {
				return target{kind: targetPreset, index: i}
			}
		}

	case ry == okRow:
		if x >= 0 && x < lipgloss.Width(okLabel) {
			return target{kind: targetOK}
		}
	}

	return target{}
}

// cellOrigin returns the absolute top-left terminal cell of a grid square.
func cellOrigin(pane picker.Pane, index int) (x, y int) {
	row, col := grid.Position(index)
	return paneX(pane) + col*cellWidth, surfaceTop + gridTop + row
}
