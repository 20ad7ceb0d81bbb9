package live

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles used by the prompts.
type styles struct {
	Mark     lipgloss.Style
	Question lipgloss.Style
	Counter  lipgloss.Style
	Cursor   lipgloss.Style
	Choice   lipgloss.Style
	Answer   lipgloss.Style
	Help     lipgloss.Style
	Spinner  lipgloss.Style
	Pending  lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Detail   lipgloss.Style
}

// newStyles builds styles bound to out. With noColor every style is plain.
func newStyles(out io.Writer, noColor bool) styles {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		plain := renderer.NewStyle()
		return styles{
			Mark: plain, Question: plain, Counter: plain, Cursor: plain,
			Choice: plain, Answer: plain, Help: plain, Spinner: plain,
			Pending: plain, Success: plain, Failure: plain, Detail: plain,
		}
	}
	color := func(value string) lipgloss.Style {
		return renderer.NewStyle().Foreground(lipgloss.Color(value))
	}
	return styles{
		Mark:     color("42").Bold(true),
		Question: renderer.NewStyle().Bold(true),
		Counter:  color("244"),
		Cursor:   color("39").Bold(true),
		Choice:   color("252"),
		Answer:   color("39"),
		Help:     color("241"),
		Spinner:  color("201"),
		Pending:  color("244"),
		Success:  color("42"),
		Failure:  color("196"),
		Detail:   color("244"),
	}
}
