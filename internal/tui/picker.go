// ABOUTME: Interactive bubbletea front end for the date range picker.
// ABOUTME: Renders the field and two month panes, routing mouse and keys to picker transitions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/events"
	"github.com/harper/daterange/internal/grid"
	"github.com/harper/daterange/internal/picker"
	"github.com/harper/daterange/internal/report"
)

// maxPaneSteps bounds cursor-driven pane navigation.
const maxPaneSteps = 12 * 200

var (
	fieldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	clearStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	navStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	weekendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	weekdayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fillerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212"))
	previewStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
	presetStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	okStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	okDisabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Preset    key.Binding
	OK        key.Binding
	Clear     key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Preset, k.OK, k.Clear, k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Preset, k.OK, k.Clear, k.Close, k.Quit},
	}
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week back")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week ahead")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day back")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day ahead")),
	Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/pick")),
	PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
	PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
	NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
	Preset:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "preset")),
	OK:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "ok")),
	Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// PickerOptions configure the interactive picker.
type PickerOptions struct {
	Picker picker.Options
	// QuitOnSelect ends the program after the first confirmation.
	QuitOnSelect bool
	// StartOpen shows the surface immediately.
	StartOpen bool
}

// outcome is shared between copies of the model.
type outcome struct {
	result   *report.Result
	quitting bool
}

// PickerModel is the bubbletea model for the range picker.
type PickerModel struct {
	picker       *picker.Picker
	doc          *events.Document
	cursor       dateutil.Date
	quitOnSelect bool
	help         help.Model
	out          *outcome
}

// NewPickerModel creates a picker model mounted on its own click document.
// Call Close when the program ends.
func NewPickerModel(opts PickerOptions) (PickerModel, error) {
	out := &outcome{}
	hostSelect := opts.Picker.OnSelect
	opts.Picker.OnSelect = func(rng [2]dateutil.Date, weekends []dateutil.Date) {
		r := report.New(rng, weekends)
		out.result = &r
		if hostSelect != nil {
			hostSelect(rng, weekends)
		}
	}

	p, err := picker.New(opts.Picker)
	if err != nil {
		return PickerModel{}, err
	}

	doc := events.NewDocument()
	p.Mount(doc)
	if opts.StartOpen {
		p.Open()
	}

	return PickerModel{
		picker:       p,
		doc:          doc,
		cursor:       p.Today(),
		quitOnSelect: opts.QuitOnSelect,
		help:         help.New(),
		out:          out,
	}, nil
}

// Picker returns the underlying state machine.
func (m PickerModel) Picker() *picker.Picker {
	return m.picker
}

// Result returns the last confirmed range.
func (m PickerModel) Result() (report.Result, bool) {
	if m.out.result == nil {
		return report.Result{}, false
	}
	return *m.out.result, true
}

// Cancelled reports whether the user quit without confirming.
func (m PickerModel) Cancelled() bool {
	return m.out.quitting && m.out.result == nil
}

// Close releases the document subscription.
func (m PickerModel) Close() {
	m.picker.Unmount()
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.out.quitting = true
			return m, tea.Quit
		}
		m = m.handleKey(msg)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}

	if m.quitOnSelect && m.picker.Selection().Confirmed && !m.picker.IsOpen() {
		return m, tea.Quit
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) PickerModel {
	p := m.picker

	if key.Matches(msg, keys.Select) {
		if !p.IsOpen() {
			p.Open()
			return m
		}
		if pane, i, ok := m.cursorCell(); ok {
			p.Grid(pane).Click(i)
		}
		return m
	}

	if key.Matches(msg, keys.Clear) {
		if p.Selection().Confirmed {
			p.Clear()
		}
		return m
	}

	if !p.IsOpen() {
		return m
	}

	switch {
	case key.Matches(msg, keys.Close):
		p.Close()
	case key.Matches(msg, keys.Up):
		m = m.moveCursor(-7)
	case key.Matches(msg, keys.Down):
		m = m.moveCursor(7)
	case key.Matches(msg, keys.Left):
		m = m.moveCursor(-1)
	case key.Matches(msg, keys.Right):
		m = m.moveCursor(1)
	case key.Matches(msg, keys.PrevMonth):
		m = m.navigate(func(g grid.Month) { g.NavigateMonth(grid.Back) })
	case key.Matches(msg, keys.NextMonth):
		m = m.navigate(func(g grid.Month) { g.NavigateMonth(grid.Forward) })
	case key.Matches(msg, keys.PrevYear):
		m = m.navigate(func(g grid.Month) { g.NavigateYear(grid.Back) })
	case key.Matches(msg, keys.NextYear):
		m = m.navigate(func(g grid.Month) { g.NavigateYear(grid.Forward) })
	case key.Matches(msg, keys.Preset):
		i := int(msg.String()[0] - '1')
		if presets := p.Presets(); i >= 0 && i < len(presets) {
			p.ApplyPreset(presets[i].Offset)
		}
	case key.Matches(msg, keys.OK):
		p.Confirm()
	}
	return m
}

// cursorCell locates the cursor in a visible pane.
func (m PickerModel) cursorCell() (picker.Pane, int, bool) {
	for _, pane := range []picker.Pane{picker.Left, picker.Right} {
		if i, ok := m.picker.Grid(pane).IndexOf(m.cursor); ok {
			return pane, i, true
		}
	}
	return picker.Left, 0, false
}

func (m PickerModel) moveCursor(days int) PickerModel {
	m.cursor = m.cursor.AddDays(days)
	m.ensureVisible()
	if pane, i, ok := m.cursorCell(); ok {
		m.picker.Grid(pane).Hover(i)
	}
	return m
}

// ensureVisible pages the panes toward the cursor using the same navigation
// a user would.
func (m PickerModel) ensureVisible() {
	for step := 0; step < maxPaneSteps; step++ {
		if _, _, ok := m.cursorCell(); ok {
			return
		}
		page := m.cursor.Page()
		panes := m.picker.Panes()
		switch {
		case page.Before(panes[picker.Left]):
			m.picker.NavigateMonth(picker.Left, grid.Back)
		case panes[picker.Right].Before(page):
			m.picker.NavigateMonth(picker.Right, grid.Forward)
		default:
			m.picker.NavigateMonth(picker.Left, grid.Forward)
		}
	}
}

// navigate applies a pane navigation on the cursor's pane and keeps the
// cursor on screen.
func (m PickerModel) navigate(fn func(grid.Month)) PickerModel {
	pane, _, ok := m.cursorCell()
	if !ok {
		pane = picker.Left
	}
	fn(m.picker.Grid(pane))

	if _, _, ok := m.cursorCell(); !ok {
		m.cursor = m.picker.Panes()[pane].First()
	}
	return m
}

func (m PickerModel) handleMouse(msg tea.MouseMsg) PickerModel {
	p := m.picker
	l := newLayout(p)
	p.SetBounds(l.fieldRect(), l.surfaceRect())
	t := l.hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if t.kind == targetCell {
			g := p.Grid(t.pane)
			if g.Hover(t.index) {
				m.cursor = g.Cells()[t.index].Date
			}
		}
		return m

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
	default:
		return m
	}

	switch t.kind {
	case targetField:
		p.Open()
	case targetClear:
		p.Clear()
	case targetMonthNav:
		p.Grid(t.pane).NavigateMonth(t.dir)
	case targetYearNav:
		p.Grid(t.pane).NavigateYear(t.dir)
	case targetCell:
		g := p.Grid(t.pane)
		if g.Click(t.index) {
			m.cursor = g.Cells()[t.index].Date
		}
	case targetPreset:
		p.ApplyPreset(p.Presets()[t.index].Offset)
	case targetOK:
		p.Confirm()
	}

	m.doc.Dispatch(events.Click{At: events.Point{X: msg.X, Y: msg.Y}})
	return m
}

// View implements tea.Model.
func (m PickerModel) View() string {
	p := m.picker
	l := newLayout(p)

	var b strings.Builder
	b.WriteString(m.fieldView(l))
	b.WriteString("\n\n")

	if p.IsOpen() {
		for _, line := range m.surfaceLines(l) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m PickerModel) fieldView(l layout) string {
	p := m.picker
	text := fmt.Sprintf("%-*s", l.fieldInner, p.DisplayText())
	style := fieldStyle
	if !p.Selection().Confirmed {
		style = placeholderStyle
	}

	line := "[ " + style.Render(text) + " ]"
	if l.showClear {
		line += " " + clearStyle.Render(clearLabel)
	}
	return line
}

func (m PickerModel) surfaceLines(l layout) []string {
	p := m.picker
	lines := make([]string, surfaceRows)
	lines[headerRow] = headerStyle.Render(p.HeaderText())

	panes := [2]grid.Month{p.Grid(picker.Left), p.Grid(picker.Right)}
	var rendered [2][]string
	for i, g := range panes {
		rendered[i] = m.paneLines(g)
	}
	gap := strings.Repeat(" ", paneGap)
	for row := range rendered[0] {
		lines[navRow+row] = rendered[0][row] + gap + rendered[1][row]
	}

	presets := p.Presets()
	buttons := make([]string, 0, len(presets))
	for i, preset := range presets {
		buttons = append(buttons, presetStyle.Render(presetButton(i, preset.Label)))
	}
	lines[presetRow] = strings.Join(buttons, " ")

	if p.CanConfirm() {
		lines[okRow] = okStyle.Render(okLabel)
	} else {
		lines[okRow] = okDisabledStyle.Render(okLabel)
	}
	return lines
}

// paneLines renders the nav line, weekday labels, and six grid rows.
func (m PickerModel) paneLines(g grid.Month) []string {
	lines := make([]string, 0, 2+grid.Rows)
	lines = append(lines, navStyle.Render(navLine(g.Title())))

	var wd strings.Builder
	for col, label := range grid.WeekdayLabels() {
		style := weekdayStyle
		if grid.IsWeekendColumn(col) {
			style = weekendStyle
		}
		wd.WriteString(style.Render(fmt.Sprintf(" %s ", label)))
	}
	lines = append(lines, wd.String())

	cells := g.Cells()
	for row := 0; row < grid.Rows; row++ {
		var rb strings.Builder
		for col := 0; col < grid.Cols; col++ {
			rb.WriteString(m.cellView(cells[row*grid.Cols+col]))
		}
		lines = append(lines, rb.String())
	}
	return lines
}

func (m PickerModel) cellView(c grid.Cell) string {
	text := fmt.Sprintf(" %2d ", c.Date.Day)

	var style lipgloss.Style
	switch {
	case c.Kind != grid.InMonth:
		style = fillerStyle
	case c.Selected:
		style = selectedStyle
	case c.InPreview:
		style = previewStyle
	case c.Weekend:
		style = weekendStyle
	default:
		style = weekdayStyle
	}
	if c.Kind == grid.InMonth && c.Today {
		style = style.Underline(true)
	}
	if c.Kind == grid.InMonth && c.Date == m.cursor && m.picker.IsOpen() {
		style = style.Reverse(true)
	}
	return style.Render(text)
}
