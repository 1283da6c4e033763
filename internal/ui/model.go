package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmorneau/loadicator/internal/stability"
)

// AppState represents the current state of the application
type AppState int

const (
	StateInput   AppState = iota // Prompt for draft and KG
	StateResults                 // Display computed stability results
)

// inputField identifies which text input is focused
type inputField int

const (
	fieldDraft inputField = iota
	fieldKG
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int

	store  *stability.TableStore
	vessel string

	// Input
	draftInput textinput.Model
	kgInput    textinput.Model
	focused    inputField
	inputErr   error

	// Results
	result  *stability.StabilityResult
	verdict stability.ComplianceVerdict
}

// NewModel creates the interactive loadicator model over an already-loaded
// table store.
func NewModel(store *stability.TableStore, vessel string) Model {
	minDraft, maxDraft := store.DraftRange()

	di := textinput.New()
	di.Placeholder = fmt.Sprintf("%.2f – %.2f", minDraft, maxDraft)
	di.Focus()
	di.CharLimit = 10
	di.Width = 20

	ki := textinput.New()
	ki.Placeholder = "e.g. 8.50"
	ki.CharLimit = 10
	ki.Width = 20

	return Model{
		state:      StateInput,
		store:      store,
		vessel:     vessel,
		draftInput: di,
		kgInput:    ki,
		focused:    fieldDraft,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.state {
	case StateInput:
		return m.updateInputState(key)
	case StateResults:
		return m.updateResultsState(key)
	}
	return m, nil
}

func (m Model) updateInputState(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		m.toggleFocus()
		return m, nil

	case "enter":
		if m.focused == fieldDraft {
			m.toggleFocus()
			return m, nil
		}
		return m.compute()
	}

	return m.updateInputs(key)
}

func (m Model) updateResultsState(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		// New calculation: back to the prompt, keeping previous entries.
		m.state = StateInput
		m.inputErr = nil
		m.focused = fieldDraft
		m.draftInput.Focus()
		m.kgInput.Blur()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == fieldDraft {
		m.draftInput, cmd = m.draftInput.Update(msg)
	} else {
		m.kgInput, cmd = m.kgInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focused == fieldDraft {
		m.focused = fieldKG
		m.draftInput.Blur()
		m.kgInput.Focus()
	} else {
		m.focused = fieldDraft
		m.kgInput.Blur()
		m.draftInput.Focus()
	}
}

// compute parses the two inputs and runs the calculation synchronously; a
// full curve sweep is sub-second, so no loading state is needed.
func (m Model) compute() (tea.Model, tea.Cmd) {
	draft, err := strconv.ParseFloat(strings.TrimSpace(m.draftInput.Value()), 64)
	if err != nil {
		m.inputErr = fmt.Errorf("invalid draft %q: enter a number in metres", m.draftInput.Value())
		return m, nil
	}
	kg, err := strconv.ParseFloat(strings.TrimSpace(m.kgInput.Value()), 64)
	if err != nil {
		m.inputErr = fmt.Errorf("invalid KG %q: enter a number in metres", m.kgInput.Value())
		return m, nil
	}
	if kg <= 0 {
		m.inputErr = fmt.Errorf("KG must be positive (got %.2f m)", kg)
		return m, nil
	}

	res, err := stability.ComputeCurve(m.store, stability.StabilityInput{Draft: draft, KG: kg})
	if err != nil {
		m.inputErr = err
		return m, nil
	}

	m.result = res
	m.verdict = stability.EvaluateCompliance(res)
	m.inputErr = nil
	m.state = StateResults
	return m, nil
}

// View renders the application
func (m Model) View() string {
	switch m.state {
	case StateResults:
		return m.viewResults()
	default:
		return m.viewInput()
	}
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Loadicator — Intact Stability"))
	b.WriteString("\n")
	if m.vessel != "" {
		b.WriteString(mutedStyle.Render(m.vessel))
		b.WriteString("\n")
	}

	minDraft, maxDraft := m.store.DraftRange()
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Valid draft range: %.2f m to %.2f m", minDraft, maxDraft)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Draft at perpendiculars (m)"))
	b.WriteString("\n")
	b.WriteString(m.draftInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("KG — centre of gravity (m)"))
	b.WriteString("\n")
	b.WriteString(m.kgInput.View())
	b.WriteString("\n")

	if m.inputErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.inputErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: switch field • enter: calculate • esc: quit"))
	return b.String()
}

func (m Model) viewResults() string {
	left := renderResultsPane(m.result, m.vessel)
	right := renderCriteriaPane(m.verdict)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	curveWidth := lipgloss.Width(top) - 6
	if m.width > 0 && m.width-6 < curveWidth {
		curveWidth = m.width - 6
	}
	if curveWidth < 30 {
		curveWidth = 30
	}
	curve := renderCurvePane(m.result, curveWidth, 12)

	help := helpStyle.Render("n: new calculation • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, top, curve, help)
}
