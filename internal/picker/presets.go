// ABOUTME: Predefined relative ranges such as "Last 7 days"
// ABOUTME: Computes shortcut ranges from today and their button labels

package picker

import (
	"fmt"

	"github.com/harper/daterange/internal/dateutil"
)

// Preset is one shortcut button.
type Preset struct {
	Offset int    `json:"offset"`
	Label  string `json:"label"`
}

// Presets returns the shortcuts in display order.
func (p *Picker) Presets() []Preset {
	out := make([]Preset, 0, len(p.presets))
	for _, offset := range p.presets {
		out = append(out, Preset{Offset: offset, Label: PresetLabel(offset)})
	}
	return out
}

// PresetLabel returns the button text for a day offset.
func PresetLabel(offset int) string {
	switch {
	case offset == 0:
		return "Today"
	case offset == -1:
		return "Yesterday"
	case offset == 1:
		return "Tomorrow"
	case offset > 1:
		return fmt.Sprintf("Next %d days", offset)
	default:
		return fmt.Sprintf("Last %d days", -offset)
	}
}

// PresetRange returns the range selected by a shortcut. Offsets of exactly
// one day select that single day; every other offset spans from today to
// today+offset, ordered so start <= end.
func PresetRange(today dateutil.Date, offset int) (start, end dateutil.Date) {
	start, end = today, today.AddDays(offset)
	if offset == 1 || offset == -1 {
		start = end
	}
	if end.Before(start) {
		start, end = end, start
	}
	return start, end
}
