package question

import "slices"

// CorrectText returns the text of the correct choice.
func (q Question) CorrectText() string {
	return q.Marker.Text
}

// IsCorrect reports whether a selected choice is the correct one. Index
// markers compare the position of the selection in the original choices;
// text markers compare the exact, case-sensitive text. Neither depends on
// the order the choices were displayed in.
func (q Question) IsCorrect(selected string) bool {
	switch q.Marker.Kind {
	case MarkerIndex:
		return slices.Index(q.Choices, selected) == q.Marker.Index
	default:
		return selected == q.Marker.Text
	}
}

// HasChoice reports whether selected is one of the question's choices.
func (q Question) HasChoice(selected string) bool {
	return slices.Contains(q.Choices, selected)
}
