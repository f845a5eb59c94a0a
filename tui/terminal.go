package tui

import (
	"strings"

	"roboshep/terminal"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// terminalModel is the command popup: a scrollback of the interpreter's
// transcript above a single input line.
type terminalModel struct {
	interp   *terminal.Interpreter
	input    textinput.Model
	viewport viewport.Model
	logger   *zap.Logger
}

func newTerminalModel(interp *terminal.Interpreter, width, height int, logger *zap.Logger) terminalModel {
	ti := textinput.New()
	ti.Prompt = terminal.Prompt
	ti.Placeholder = "type help"
	ti.CharLimit = 256
	ti.Width = width - len(terminal.Prompt) - 1
	ti.Focus()

	m := terminalModel{
		interp:   interp,
		input:    ti,
		viewport: viewport.New(width, height),
		logger:   logger,
	}
	m.refresh()
	return m
}

func (m terminalModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m terminalModel) Update(msg tea.Msg) (terminalModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			raw := m.input.Value()
			effect := m.interp.Submit(raw)
			m.logger.Debug("Terminal command",
				zap.String("command", strings.TrimSpace(raw)),
				zap.Stringer("effect", effect.Kind))
			m.input.Reset()
			m.refresh()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *terminalModel) refresh() {
	m.viewport.SetContent(renderTranscript(m.interp.Transcript()))
	m.viewport.GotoBottom()
}

func renderTranscript(lines []terminal.Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line.Kind == terminal.LineInput {
			b.WriteString(inputLineStyle.Render(terminal.Prompt + line.Text))
			continue
		}
		b.WriteString(outputLineStyle.Render(line.Text))
	}
	return b.String()
}

func (m terminalModel) View() string {
	return popupTitleStyle.Render("terminal") + "\n" +
		m.viewport.View() + "\n" +
		m.input.View()
}
