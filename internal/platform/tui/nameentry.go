package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/game"
)

var (
	entryTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	entryErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	entryHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NameEntry is the form shown before the first run.
type NameEntry struct {
	input     textinput.Model
	err       error
	submitted string
}

// NewNameEntry creates a focused name form pre-filled with initial.
func NewNameEntry(initial string) NameEntry {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Prompt = "Name: "
	ti.CharLimit = 16
	ti.Width = 20
	ti.SetValue(strings.TrimSpace(initial))
	ti.Focus()

	return NameEntry{input: ti}
}

// Init starts the cursor blinking.
func (e NameEntry) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles typing and submission. A blank name keeps the form open
// and shows a prompt.
func (e NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		name, err := game.ValidateName(e.input.Value())
		if err != nil {
			e.err = err
			return e, nil
		}
		e.err = nil
		e.submitted = name
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// Submitted returns the accepted name once the player pressed Enter.
func (e NameEntry) Submitted() (string, bool) {
	return e.submitted, e.submitted != ""
}

// Err returns the last validation error, if any.
func (e NameEntry) Err() error {
	return e.err
}

// View renders the form.
func (e NameEntry) View() string {
	var b strings.Builder
	b.WriteString(entryTitleStyle.Render("S Q U A R E   R U N N E R"))
	b.WriteString("\n")
	b.WriteString(e.input.View())
	b.WriteString("\n\n")
	if e.err != nil {
		b.WriteString(entryErrorStyle.Render(capitalize(e.err.Error())))
		b.WriteString("\n")
	}
	b.WriteString(entryHintStyle.Render("enter start • esc quit"))
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
