package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// model edits one line. Up and Down walk the history; Tab completes the
// current suggestion.
type model struct {
	input   textinput.Model
	prompt  string
	history []string
	// cursor indexes history; len(history) is the line being typed.
	cursor int
	draft  string
	done   bool
	eof    bool
}

func newModel(prompt string, history, suggestions []string) model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.ShowSuggestions = len(suggestions) > 0
	ti.SetSuggestions(suggestions)
	_ = ti.Focus()

	return model{
		input:   ti,
		prompt:  prompt,
		history: history,
		cursor:  len(history),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyCtrlC:
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.cursor = len(m.history)
				return m, nil
			}
			m.eof = true
			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				if m.cursor == len(m.history) {
					m.draft = m.input.Value()
				}
				m.cursor--
				m.show(m.history[m.cursor])
			}
			return m, nil

		case tea.KeyDown:
			if m.cursor < len(m.history) {
				m.cursor++
				if m.cursor == len(m.history) {
					m.show(m.draft)
				} else {
					m.show(m.history[m.cursor])
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) show(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

func (m model) View() string {
	if m.done {
		return m.prompt + m.input.Value() + "\n"
	}
	if m.eof {
		return ""
	}
	return m.input.View()
}

// Value returns the line as edited so far.
func (m model) Value() string {
	return m.input.Value()
}
