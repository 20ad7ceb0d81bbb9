package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"termquiz/internal/session"
)

// Options configures summary rendering.
type Options struct {
	NoColor bool
	// ShowPercent appends the percentage to the score line.
	ShowPercent bool
}

// Render writes the final score, the tier message and, when a player name
// was captured, a personalized farewell.
func Render(w io.Writer, summary session.Summary, opts Options) error {
	renderer := lipgloss.NewRenderer(w)
	scoreLine := formatScore(summary.Score, summary.Total)
	if opts.ShowPercent {
		scoreLine += " (" + formatPercent(summary.Score, summary.Total) + ")"
	}
	lines := []string{
		"",
		stylize(renderer, scoreLine, opts.NoColor, lipgloss.Color("33")),
		stylize(renderer, summary.Tier.Message(), opts.NoColor, tierColor(summary.Tier)),
	}
	if summary.PlayerName != "" {
		lines = append(lines, stylize(renderer, formatFarewell(summary.PlayerName), opts.NoColor, lipgloss.Color("244")))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

// tierColor selects the color for a tier message.
func tierColor(tier session.Tier) lipgloss.Color {
	switch tier {
	case session.TierPerfect:
		return lipgloss.Color("42")
	case session.TierGood:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("196")
	}
}

// stylize applies optional color styling.
func stylize(renderer *lipgloss.Renderer, text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return renderer.NewStyle().Foreground(color).Render(text)
}
