// ABOUTME: Interactive TUI wizard for configuring daterange defaults.
// ABOUTME: 2-step bubbletea model collecting predefined ranges and the date layout.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/daterange/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepRanges Step = iota
	StepFormat
	StepDone
)

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	ranges   []int
	errMsg   string
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var sampleDay = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(ranges []int, dateFormat string) SetupModel {
	rangesInput := textinput.New()
	rangesInput.Placeholder = config.FormatRanges(config.DefaultPredefinedRanges)
	rangesInput.Focus()
	rangesInput.Width = 50
	if len(ranges) > 0 {
		rangesInput.SetValue(config.FormatRanges(ranges))
	}

	formatInput := textinput.New()
	formatInput.Placeholder = config.DefaultDateFormat
	formatInput.Width = 50
	if dateFormat != "" {
		formatInput.SetValue(dateFormat)
	}

	return SetupModel{
		step:   StepRanges,
		inputs: [2]textinput.Model{rangesInput, formatInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step == StepRanges || m.step == StepFormat {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.step == StepRanges || m.step == StepFormat {
			idx := int(m.step)
			var cmd tea.Cmd
			m.inputs[idx], cmd = m.inputs[idx].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)

	switch m.step {
	case StepRanges:
		ranges, err := config.ParseRanges(m.inputs[0].Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.ranges = ranges
		m.inputs[0].SetValue(config.FormatRanges(ranges))

	case StepFormat:
		val := strings.TrimSpace(m.inputs[1].Value())
		if val == "" {
			val = config.DefaultDateFormat
		}
		if sampleDay.Format(val) == val {
			m.errMsg = fmt.Sprintf("%q has no date fields (try 02/01/2006 or 2006-01-02)", val)
			return m, nil
		}
		m.inputs[1].SetValue(val)
	}

	m.errMsg = ""
	m.inputs[idx].Blur()

	switch m.step {
	case StepRanges:
		m.step = StepFormat
		m.inputs[1].Focus()
		return m, textinput.Blink
	case StepFormat:
		m.step = StepDone
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   DATERANGE"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure range shortcuts and date display.\n\n")

	switch m.step {
	case StepRanges:
		b.WriteString(stepStyle.Render("Step 1 of 2: Predefined Ranges"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(four day offsets, comma separated, press Enter for default)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepFormat:
		b.WriteString(fmt.Sprintf("  Ranges: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 2: Date Format"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(Go layout, press Enter for default: %s)", config.DefaultDateFormat)))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Ranges:       %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  Date format:  %s (%s)\n", m.inputs[1].Value(), sampleDay.Format(m.inputs[1].Value())))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (ranges []int, dateFormat string) {
	return m.ranges, m.inputs[1].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
