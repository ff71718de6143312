// ABOUTME: Unit tests for the daterange setup TUI wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func enter(t *testing.T, m SetupModel) SetupModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(SetupModel)
}

func TestNewSetupModel_DefaultValues(t *testing.T) {
	m := NewSetupModel(nil, "")
	if m.step != StepRanges {
		t.Errorf("expected initial step StepRanges, got %d", m.step)
	}
	if m.inputs[0].Value() != "" {
		t.Error("expected empty ranges input for new config")
	}
	if m.inputs[1].Value() != "" {
		t.Error("expected empty format input for new config")
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel([]int{-1, 0, 7, 14}, "2006-01-02")
	if m.inputs[0].Value() != "-1,0,7,14" {
		t.Errorf("expected pre-filled ranges, got %q", m.inputs[0].Value())
	}
	if m.inputs[1].Value() != "2006-01-02" {
		t.Errorf("expected pre-filled format, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_StepTransitions(t *testing.T) {
	m := NewSetupModel(nil, "")

	m = enter(t, m)
	if m.step != StepFormat {
		t.Errorf("expected StepFormat after Enter on ranges, got %d", m.step)
	}
	if m.inputs[0].Value() != "0,-7,-30,30" {
		t.Errorf("expected default ranges, got %q", m.inputs[0].Value())
	}

	m = enter(t, m)
	if m.step != StepDone {
		t.Errorf("expected StepDone after Enter on format, got %d", m.step)
	}
	if m.inputs[1].Value() != "02/01/2006" {
		t.Errorf("expected default format, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_InvalidRanges(t *testing.T) {
	m := NewSetupModel(nil, "")
	m.inputs[0].SetValue("1,2,3")

	m = enter(t, m)
	if m.step != StepRanges {
		t.Errorf("expected to stay on StepRanges with three offsets, got %d", m.step)
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
	if !strings.Contains(m.View(), "expected 4 offsets") {
		t.Error("expected view to show the validation error")
	}

	m.inputs[0].SetValue("1, 2, 3, 4")
	m = enter(t, m)
	if m.step != StepFormat {
		t.Errorf("expected StepFormat after fixing ranges, got %d", m.step)
	}
	if m.errMsg != "" {
		t.Errorf("expected error cleared, got %q", m.errMsg)
	}
	if m.inputs[0].Value() != "1,2,3,4" {
		t.Errorf("expected normalized ranges, got %q", m.inputs[0].Value())
	}
}

func TestSetupModel_InvalidFormat(t *testing.T) {
	m := NewSetupModel(nil, "")
	m = enter(t, m)
	m.inputs[1].SetValue("dd/mm/yyyy")

	m = enter(t, m)
	if m.step != StepFormat {
		t.Errorf("expected to stay on StepFormat with a layout lacking date fields, got %d", m.step)
	}
}

func TestSetupModel_QuitOnCtrlC(t *testing.T) {
	m := NewSetupModel(nil, "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on ctrl+c")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
	if m.ShouldSave() {
		t.Error("expected ShouldSave false after ctrl+c")
	}
}

func TestSetupModel_QuitOnEsc(t *testing.T) {
	m := NewSetupModel(nil, "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on escape")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
}

func TestSetupModel_Result(t *testing.T) {
	m := NewSetupModel(nil, "")
	m.inputs[0].SetValue("-1,0,-7,30")
	m = enter(t, m)
	m.inputs[1].SetValue("2006-01-02")
	m = enter(t, m)

	ranges, format := m.Result()
	if len(ranges) != 4 || ranges[0] != -1 || ranges[3] != 30 {
		t.Errorf("unexpected ranges %v", ranges)
	}
	if format != "2006-01-02" {
		t.Errorf("expected format from result, got %q", format)
	}
}

func TestSetupModel_ShouldSave(t *testing.T) {
	t.Run("done means save", func(t *testing.T) {
		m := NewSetupModel(nil, "")
		m.step = StepDone
		if !m.ShouldSave() {
			t.Error("expected ShouldSave true when done")
		}
	})

	t.Run("quit means no save", func(t *testing.T) {
		m := NewSetupModel(nil, "")
		m.quitting = true
		if m.ShouldSave() {
			t.Error("expected ShouldSave false when quitting")
		}
	})
}

func TestSetupModel_ViewContainsBranding(t *testing.T) {
	m := NewSetupModel(nil, "")
	if !strings.Contains(m.View(), "DATERANGE") {
		t.Error("expected view to contain DATERANGE branding")
	}
}

func TestSetupModel_ViewShowsCurrentStep(t *testing.T) {
	m := NewSetupModel(nil, "")

	m.step = StepRanges
	if !strings.Contains(m.View(), "Predefined Ranges") {
		t.Error("expected StepRanges view to mention Predefined Ranges")
	}

	m.step = StepFormat
	if !strings.Contains(m.View(), "Date Format") {
		t.Error("expected StepFormat view to mention Date Format")
	}
}

func TestSetupModel_ViewDone(t *testing.T) {
	m := NewSetupModel([]int{0, -7, -30, 30}, "02/01/2006")
	m = enter(t, m)
	m = enter(t, m)

	view := m.View()
	if !strings.Contains(view, "Setup complete!") {
		t.Error("expected StepDone view to report completion")
	}
	if !strings.Contains(view, "05/03/2024") {
		t.Error("expected StepDone view to show a sample date")
	}
}
