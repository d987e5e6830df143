package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// TerminalPrompter reads a line through a Bubble Tea text field. Input is
// echoed as typed.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *TerminalPrompter) Prompt(label string) (string, error) {
	program := tea.NewProgram(newPromptModel(label), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrPromptAborted
		}
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}

	m, ok := final.(*promptModel)
	if !ok {
		return "", fmt.Errorf("%w: unexpected prompt state %T", ErrInputRead, final)
	}
	if m.aborted {
		return "", ErrPromptAborted
	}
	return m.input.Value(), nil
}

// promptModel implements tea.Model around a single text input.
type promptModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel(label string) *promptModel {
	input := textinput.New()
	input.Prompt = label
	input.PromptStyle = labelStyle
	input.EchoMode = textinput.EchoNormal
	input.Focus()
	return &promptModel{input: input}
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update finishes on Enter, aborts on Ctrl+C or Esc, and forwards
// everything else to the text field.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	if m.done || m.aborted {
		return labelStyle.Render(m.input.Prompt) + m.input.Value() + "\n"
	}
	return m.input.View()
}
