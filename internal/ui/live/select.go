package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termquiz/internal/session"
)

// selectModel lets the player pick exactly one choice with the cursor.
type selectModel struct {
	prompt   session.Prompt
	cursor   int
	selected string
	done     bool
	aborted  bool
	keys     keyMap
	styles   styles
}

func newSelectModel(prompt session.Prompt, st styles) selectModel {
	return selectModel{prompt: prompt, keys: defaultKeyMap(), styles: st}
}

// Init has nothing to start; the model waits for keys.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor, submits on enter and aborts on ctrl+c or esc.
// Digit keys jump the cursor to that choice without submitting.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done || m.aborted {
		return m, nil
	}
	count := len(m.prompt.Choices)
	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case count == 0:
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + count) % count
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % count
	case key.Matches(keyMsg, m.keys.Select):
		m.selected = m.prompt.Choices[m.cursor]
		m.done = true
		return m, tea.Quit
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		digit := keyMsg.Runes[0]
		if digit >= '1' && digit <= '9' && int(digit-'1') < count {
			m.cursor = int(digit - '1')
		}
	}
	return m, nil
}

// View renders the question and, once answered, collapses to the answer line.
func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Mark.Render("?"))
	b.WriteString(" ")
	b.WriteString(m.styles.Question.Render(m.prompt.Message))
	if counter := formatCounter(m.prompt); counter != "" {
		b.WriteString(" ")
		b.WriteString(m.styles.Counter.Render(counter))
	}
	if m.done {
		b.WriteString(" ")
		b.WriteString(m.styles.Answer.Render(m.selected))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")
	if m.aborted {
		return b.String()
	}
	for i, choice := range m.prompt.Choices {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("❯ " + choice))
		} else {
			b.WriteString("  " + m.styles.Choice.Render(choice))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.keys.helpLine()))
	b.WriteString("\n")
	return b.String()
}
