package live

import (
	"strconv"

	"termquiz/internal/session"
)

// formatCounter renders the question position, e.g. "(2/5)".
func formatCounter(prompt session.Prompt) string {
	if prompt.Total <= 0 {
		return ""
	}
	return "(" + strconv.Itoa(prompt.Index+1) + "/" + strconv.Itoa(prompt.Total) + ")"
}

// formatVerdict renders the resolved feedback lines.
func formatVerdict(verdict session.Verdict, st styles) string {
	if verdict.Correct {
		return st.Success.Render("✔ Correct! 🎉") + "\n"
	}
	return st.Failure.Render("✖ Wrong! 😢") + "\n" +
		st.Detail.Render("  You answered: "+verdict.Selected) + "\n" +
		st.Detail.Render("  Correct answer: "+verdict.Expected) + "\n"
}
