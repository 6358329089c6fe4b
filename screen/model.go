// Package screen is a single-screen terminal UI that recalculates the tip on every keystroke.
package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jrh3k5/tiptime/session"
)

type field int

const (
	billField field = iota
	tipPercentField
	roundUpField
	fieldCount
)

// Model is the Bubble Tea model of the tip screen.
type Model struct {
	session   *session.Session
	billInput textinput.Model
	tipInput  textinput.Model
	focused   field
	quitting  bool
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates the tip screen over the given session. defaultTipPercent, if not
// empty, pre-fills the tip percentage field.
func New(tipSession *session.Session, defaultTipPercent string) *Model {
	billInput := textinput.New()
	billInput.Placeholder = "0.00"
	billInput.Prompt = ""
	billInput.Width = 20
	billInput.SetValue(tipSession.BillText())
	billInput.Focus()

	tipInput := textinput.New()
	tipInput.Placeholder = "0"
	tipInput.Prompt = ""
	tipInput.Width = 20
	tipPercentText := tipSession.TipPercentText()
	if tipPercentText == "" {
		tipPercentText = defaultTipPercent
	}
	tipInput.SetValue(tipPercentText)
	tipSession.SetTipPercentText(tipPercentText)

	return &Model{
		session:   tipSession,
		billInput: billInput,
		tipInput:  tipInput,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.focus((m.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.focus((m.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focused == roundUpField {
				m.session.SetRoundUp(!m.session.RoundUp())
				return m, nil
			}
			return m, m.focus(m.focused + 1)
		case " ":
			if m.focused == roundUpField {
				m.session.SetRoundUp(!m.session.RoundUp())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case billField:
		m.billInput, cmd = m.billInput.Update(msg)
		m.session.SetBillText(m.billInput.Value())
	case tipPercentField:
		m.tipInput, cmd = m.tipInput.Update(msg)
		m.session.SetTipPercentText(m.tipInput.Value())
	}

	return m, cmd
}

func (m *Model) focus(target field) tea.Cmd {
	m.focused = target
	m.billInput.Blur()
	m.tipInput.Blur()

	switch target {
	case billField:
		return m.billInput.Focus()
	case tipPercentField:
		return m.tipInput.Focus()
	}

	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(session.CalculateTipLabel) + "\n\n")
	b.WriteString(m.label(billField, session.BillAmountLabel) + "\n")
	b.WriteString(m.billInput.View() + "\n\n")
	b.WriteString(m.label(tipPercentField, session.TipPercentageLabel) + "\n")
	b.WriteString(m.tipInput.View() + "\n\n")

	toggle := "[ ]"
	if m.session.RoundUp() {
		toggle = "[x]"
	}
	b.WriteString(m.label(roundUpField, session.RoundUpLabel) + " " + toggle + "\n\n")

	b.WriteString(Styles.TipAmount.Render(m.session.TipAmountText()) + "\n\n")
	b.WriteString(Styles.Help.Render("Tab: next field  Space: toggle round up  Esc: quit"))

	return Styles.Box.Render(b.String())
}

func (m *Model) label(target field, text string) string {
	if m.focused == target {
		return Styles.Focused.Render("> " + text)
	}

	return Styles.Label.Render("  " + text)
}

// Tip is the formatted tip for the current inputs.
func (m *Model) Tip() string {
	return m.session.Tip()
}

// Run shows the tip screen until the user quits and returns the last calculated tip.
func Run(tipSession *session.Session, defaultTipPercent string, opts ...tea.ProgramOption) (string, error) {
	model := New(tipSession, defaultTipPercent)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return "", err
	}

	return model.Tip(), nil
}
