package live

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"termquiz/internal/session"
)

// feedbackDoneMsg ends the checking phase.
type feedbackDoneMsg struct{}

// feedbackModel spins for the feedback delay, then shows the verdict.
type feedbackModel struct {
	spinner spinner.Model
	verdict session.Verdict
	delay   time.Duration
	done    bool
	aborted bool
	keys    keyMap
	styles  styles
}

func newFeedbackModel(verdict session.Verdict, delay time.Duration, st styles) feedbackModel {
	return feedbackModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.Spinner)),
		verdict: verdict,
		delay:   delay,
		keys:    defaultKeyMap(),
		styles:  st,
	}
}

// Init starts the spinner and the delay timer.
func (m feedbackModel) Init() tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return feedbackDoneMsg{} }
	}
	return tea.Batch(m.spinner.Tick, tea.Tick(m.delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	}))
}

// Update advances the spinner until the delay elapses.
func (m feedbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Abort) {
			m.aborted = true
			return m, tea.Quit
		}
	case feedbackDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	return m, nil
}

// View renders the checking line or the resolved verdict.
func (m feedbackModel) View() string {
	if m.done {
		return formatVerdict(m.verdict, m.styles)
	}
	if m.aborted {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Pending.Render("Checking answer...") + "\n"
}
