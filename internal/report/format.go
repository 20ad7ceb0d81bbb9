package report

import "fmt"

// formatPercent returns a whole-number percentage for report output.
func formatPercent(score, total int) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", score*100/total)
}

// formatScore renders the score line.
func formatScore(score, total int) string {
	return fmt.Sprintf("Your final score is: %d/%d", score, total)
}

// formatFarewell renders the personalized closing line.
func formatFarewell(name string) string {
	return fmt.Sprintf("Thanks for playing, %s!", name)
}
