// ABOUTME: Unit tests for picker view geometry and hit-testing.
// ABOUTME: Checks that rendered widths line up with the clickable regions.
package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/daterange/internal/grid"
	"github.com/harper/daterange/internal/picker"
)

func openLayout() layout {
	return layout{
		fieldInner: len(picker.Placeholder),
		open:       true,
		presets:    presetSpans([]picker.Preset{{Offset: 0, Label: "Today"}, {Offset: -7, Label: "Last 7 days"}}),
	}
}

func TestNavLineWidth(t *testing.T) {
	for _, title := range []string{"Mar, 2024", "Sep, 10000", ""} {
		if w := lipgloss.Width(navLine(title)); w != paneWidth {
			t.Errorf("navLine(%q) width %d, want %d", title, w, paneWidth)
		}
	}
}

func TestPresetSpans(t *testing.T) {
	spans := presetSpans([]picker.Preset{{Label: "Today"}, {Label: "Last 7 days"}})
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	// "[1 Today]" then a space then "[2 Last 7 days]"
	if spans[0] != (span{start: 0, end: 9}) {
		t.Errorf("unexpected first span %+v", spans[0])
	}
	if spans[1] != (span{start: 10, end: 25}) {
		t.Errorf("unexpected second span %+v", spans[1])
	}
}

func TestHit(t *testing.T) {
	l := openLayout()

	tests := []struct {
		name string
		x, y int
		want target
	}{
		{"field", 0, fieldRow, target{kind: targetField}},
		{"past field", l.fieldWidth() + 1, fieldRow, target{}},
		{"header", 3, surfaceTop + headerRow, target{}},
		{"left year back", 1, surfaceTop + navRow, target{kind: targetYearNav, pane: picker.Left, dir: grid.Back}},
		{"left month back", 3, surfaceTop + navRow, target{kind: targetMonthNav, pane: picker.Left, dir: grid.Back}},
		{"title", 10, surfaceTop + navRow, target{}},
		{"right month forward", paneX(picker.Right) + 24, surfaceTop + navRow, target{kind: targetMonthNav, pane: picker.Right, dir: grid.Forward}},
		{"right year forward", surfaceWidth - 1, surfaceTop + navRow, target{kind: targetYearNav, pane: picker.Right, dir: grid.Forward}},
		{"weekday labels", 5, surfaceTop + weekdayRow, target{}},
		{"first cell", 0, surfaceTop + gridTop, target{kind: targetCell, pane: picker.Left, index: 0}},
		{"left last cell", paneWidth - 1, surfaceTop + gridTop + grid.Rows - 1, target{kind: targetCell, pane: picker.Left, index: grid.Size - 1}},
		{"gap", paneWidth + 1, surfaceTop + gridTop, target{}},
		{"right cell", paneX(picker.Right) + 5, surfaceTop + gridTop + 1, target{kind: targetCell, pane: picker.Right, index: 8}},
		{"preset 1", 4, surfaceTop + presetRow, target{kind: targetPreset, index: 0}},
		{"between presets", 9, surfaceTop + presetRow, target{}},
		{"preset 2", 12, surfaceTop + presetRow, target{kind: targetPreset, index: 1}},
		{"ok", 5, surfaceTop + okRow, target{kind: targetOK}},
		{"past ok", 6, surfaceTop + okRow, target{}},
		{"below surface", 1, surfaceTop + surfaceRows, target{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.hit(tc.x, tc.y); got != tc.want {
				t.Errorf("hit(%d, %d) = %+v, want %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestHitClosedIgnoresSurface(t *testing.T) {
	l := openLayout()
	l.open = false

	if got := l.hit(1, surfaceTop+gridTop); got != (target{}) {
		t.Errorf("expected no target while closed, got %+v", got)
	}
	if got := l.hit(1, fieldRow); got.kind != targetField {
		t.Errorf("expected field target while closed, got %+v", got)
	}
}

func TestHitClear(t *testing.T) {
	l := openLayout()
	l.showClear = true

	if got := l.hit(l.fieldWidth()+1, fieldRow); got.kind != targetClear {
		t.Errorf("expected clear target, got %+v", got)
	}
}

func TestCellOrigin(t *testing.T) {
	x, y := cellOrigin(picker.Right, 8)
	if x != paneX(picker.Right)+cellWidth || y != surfaceTop+gridTop+1 {
		t.Errorf("unexpected origin (%d, %d)", x, y)
	}
}
