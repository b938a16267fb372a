package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/game"
)

// PromptReader asks each question with a small inline Bubble Tea program.
type PromptReader struct {
	in  io.Reader
	out io.Writer
}

// NewPromptReader creates a Bubble Tea input. Nil in or out use the
// program defaults (stdin and stdout).
func NewPromptReader(in io.Reader, out io.Writer) *PromptReader {
	return &PromptReader{in: in, out: out}
}

// ReadLine runs a one-field prompt until Enter, Esc or Ctrl-C.
func (p *PromptReader) ReadLine(prompt string) (string, error) {
	var opts []tea.ProgramOption
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(newPromptModel(prompt), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	m := final.(promptModel)
	if m.quit {
		return "", game.ErrQuit
	}
	return m.value, nil
}

type promptModel struct {
	input textinput.Model
	value string
	done  bool
	quit  bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.CharLimit = 32
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.quit = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View leaves the answered prompt on screen once the program exits.
func (m promptModel) View() string {
	if m.done {
		return m.input.Prompt + m.value + "\n"
	}
	return m.input.View()
}
