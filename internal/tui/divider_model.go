// Package tui implements the interactive divider explorer: editable Vin
// and Vout fields with the best resistor pair recalculated on demand.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ohmtools/ohmoracle/internal/divider"
)

// RecalculateFunc computes the best pair for the entered voltages. The TUI
// never touches the catalog directly; the CLI closes over it.
type RecalculateFunc func(vin, vout float64) (divider.Result, error)

// Input field indices.
const (
	fieldVin = iota
	fieldVout
	fieldCount
)

// Default dimensions before the first WindowSizeMsg.
const (
	dividerDefaultWidth  = 60
	dividerDefaultHeight = 16
)

// dividerRecalcMsg is sent when a recalculation completes.
type dividerRecalcMsg struct {
	result divider.Result
	err    error
}

// DividerModel is the Bubble Tea model for interactive divider exploration.
type DividerModel struct {
	ctx      context.Context
	inputs   [fieldCount]textinput.Model
	focused  int
	result   *divider.Result
	err      error
	quitting bool

	width  int
	height int

	recalculateFn RecalculateFunc
}

// NewDividerModel creates the interactive model seeded with the voltages
// from the command line.
func NewDividerModel(ctx context.Context, vin, vout float64, recalculateFn RecalculateFunc) *DividerModel {
	m := &DividerModel{
		ctx:           ctx,
		width:         dividerDefaultWidth,
		height:        dividerDefaultHeight,
		recalculateFn: recalculateFn,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 12
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldVin].SetValue(strconv.FormatFloat(vin, 'g', -1, 64))
	m.inputs[fieldVout].SetValue(strconv.FormatFloat(vout, 'g', -1, 64))
	m.inputs[fieldVin].Focus()

	return m
}

// GetResult returns the most recent search result, or nil if none
// succeeded. Called by the CLI after the program exits.
func (m *DividerModel) GetResult() *divider.Result {
	return m.result
}

// Init requests the cursor blink and an initial calculation.
func (m *DividerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.triggerRecalculation())
}

// Update handles messages and updates the model state.
func (m *DividerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dividerRecalcMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		result := msg.result
		m.result = &result
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // only the navigation keys matter; the rest feed the inputs
func (m *DividerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focused + 1) % fieldCount)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focused + fieldCount - 1) % fieldCount)
		return m, nil

	case tea.KeyEnter:
		return m, m.triggerRecalculation()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to the given field.
func (m *DividerModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// triggerRecalculation parses the fields and produces a command running the
// search callback.
func (m *DividerModel) triggerRecalculation() tea.Cmd {
	vin, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldVin].Value()), 64)
	if err != nil {
		m.err = fmt.Errorf("vin %q is not a number", m.inputs[fieldVin].Value())
		return nil
	}
	vout, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldVout].Value()), 64)
	if err != nil {
		m.err = fmt.Errorf("vout %q is not a number", m.inputs[fieldVout].Value())
		return nil
	}

	recalculateFn := m.recalculateFn
	return func() tea.Msg {
		result, err := recalculateFn(vin, vout)
		return dividerRecalcMsg{result: result, err: err}
	}
}

// Styles for the interactive view.
//
//nolint:gochecknoglobals // lipgloss styles are conventionally package-level
var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true)
	tuiLabelStyle  = lipgloss.NewStyle().Faint(true).Width(6)
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tuiResultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tuiHelpStyle   = lipgloss.NewStyle().Faint(true)
)

// View renders the form and the current best pair.
func (m *DividerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render("Voltage Divider Explorer"))
	b.WriteString("\n\n")
	b.WriteString(tuiLabelStyle.Render("Vin") + m.inputs[fieldVin].View() + "\n")
	b.WriteString(tuiLabelStyle.Render("Vout") + m.inputs[fieldVout].View() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(tuiErrorStyle.Render(m.err.Error()) + "\n")
	case m.result != nil:
		body := fmt.Sprintf("R1 %s ohms   R2 %s ohms\nVout %.6f V   Error %.4f %%",
			strconv.FormatFloat(m.result.R1, 'f', -1, 64),
			strconv.FormatFloat(m.result.R2, 'f', -1, 64),
			m.result.Vout, m.result.ErrorPercent)
		b.WriteString(tuiResultStyle.Render(body) + "\n")
	default:
		b.WriteString("calculating...\n")
	}

	b.WriteString("\n" + tuiHelpStyle.Render("tab: switch field - enter: recalculate - esc: quit"))
	return b.String()
}
