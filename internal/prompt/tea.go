package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// TeaPrompter asks questions on a terminal using Bubble Tea.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter returns a prompter reading keys from in and drawing on out.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Ask runs one Bubble Tea program per question. Ctrl+C, Esc or a cancelled
// context abort it with ErrCancelled.
func (p *TeaPrompter) Ask(ctx context.Context, f Field) (string, error) {
	program := tea.NewProgram(
		newFieldModel(f),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", runError(f, err)
	}

	m, ok := final.(fieldModel)
	if !ok {
		return "", fmt.Errorf("prompt %q: unexpected model %T", f.Message, final)
	}
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}

// runError maps a failed program run. A killed program (cancelled context) and
// an interrupted one (SIGINT) both count as the operator cancelling.
func runError(f Field, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt %q: %w", f.Message, err)
}

// fieldModel is the Bubble Tea model behind a single question.
type fieldModel struct {
	field     Field
	input     textinput.Model
	err       error
	value     string
	done      bool
	cancelled bool
}

func newFieldModel(f Field) fieldModel {
	ti := textinput.New()
	ti.Prompt = "› "
	if f.Mask != 0 {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = f.Mask
	} else {
		ti.Placeholder = f.Default
	}
	ti.Focus()
	return fieldModel{field: f, input: ti}
}

func (m fieldModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m fieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := m.field.Resolve(m.input.Value())
			if err := m.field.Check(value); err != nil {
				m.err = err
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m fieldModel) View() string {
	var b strings.Builder

	if m.done {
		shown := m.value
		if m.field.Mask != 0 {
			shown = strings.Repeat(string(m.field.Mask), len([]rune(m.input.Value())))
		}
		fmt.Fprintf(&b, "%s %s %s\n", doneStyle.Render("✔"), m.field.Message, hintStyle.Render(shown))
		return b.String()
	}

	b.WriteString(questionStyle.Render("?") + " " + m.field.Message)
	if m.field.Default != "" && m.field.Mask == 0 {
		b.WriteString(hintStyle.Render(" (" + m.field.Default + ")"))
	}
	b.WriteString(" " + m.input.View())
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("> "+m.err.Error()))
	}
	if m.cancelled {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
