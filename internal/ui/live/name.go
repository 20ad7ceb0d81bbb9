package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termquiz/internal/session"
)

const namePrompt = "What is your name? "

// nameModel reads the player's name before the quiz starts.
type nameModel struct {
	input   textinput.Model
	name    string
	done    bool
	aborted bool
	keys    keyMap
	styles  styles
}

func newNameModel(st styles) nameModel {
	input := textinput.New()
	input.Prompt = st.Question.Render(namePrompt)
	input.Placeholder = session.DefaultPlayerName
	input.CharLimit = 64
	input.Focus()
	return nameModel{input: input, keys: defaultKeyMap(), styles: st}
}

// Init starts the cursor blink.
func (m nameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards keystrokes to the input until enter or abort.
func (m nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Select):
			m.name = strings.TrimSpace(m.input.Value())
			if m.name == "" {
				m.name = session.DefaultPlayerName
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input, or the captured name once submitted.
func (m nameModel) View() string {
	if m.done {
		return m.styles.Question.Render(namePrompt) + m.styles.Answer.Render(m.name) + "\n"
	}
	if m.aborted {
		return ""
	}
	return m.input.View() + "\n"
}
