package question

import (
	"fmt"
	"slices"
	"strings"
)

// Issue captures a validation problem in a quiz file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// New builds a question and resolves its marker against the choices.
func New(name, message string, choices []string, marker Marker) (Question, error) {
	collector := &issueCollector{}
	q := Question{
		Name:    name,
		Type:    TypeList,
		Message: message,
		Choices: slices.Clone(choices),
		Marker:  marker,
	}
	q = resolveQuestion(collector, "question", q)
	if err := collector.result(); err != nil {
		return Question{}, err
	}
	return q, nil
}

func resolveQuestions(raws []rawQuestion) ([]Question, error) {
	collector := &issueCollector{}
	questions := make([]Question, 0, len(raws))
	for i, raw := range raws {
		prefix := fmt.Sprintf("questions[%d]", i)
		q := Question{
			Name:    raw.Name,
			Type:    strings.TrimSpace(raw.Type),
			Message: raw.Message,
			Choices: raw.Choices,
		}
		if q.Type == "" {
			q.Type = TypeList
		}
		if q.Type != TypeList {
			collector.add(prefix+".type", fmt.Sprintf("unsupported type %q (expected %q)", raw.Type, TypeList))
		}

		switch {
		case raw.Correct == nil && raw.CorrectAnswer == nil:
			collector.add(prefix, "one of correct or correctAnswer is required")
			continue
		case raw.CorrectAnswer != nil:
			q.Marker = TextMarker(*raw.CorrectAnswer)
		default:
			q.Marker = IndexMarker(*raw.Correct)
		}

		q = resolveQuestion(collector, prefix, q)
		if raw.Correct != nil && raw.CorrectAnswer != nil && q.Marker.Index >= 0 && *raw.Correct != q.Marker.Index {
			collector.add(prefix+".correct", fmt.Sprintf("index %d disagrees with correctAnswer %q", *raw.Correct, *raw.CorrectAnswer))
		}
		questions = append(questions, q)
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}

// resolveQuestion checks the shape of a question and fills in both halves of its marker.
func resolveQuestion(collector *issueCollector, prefix string, q Question) Question {
	if strings.TrimSpace(q.Message) == "" {
		collector.add(prefix+".message", "is required")
	}
	if len(q.Choices) == 0 {
		collector.add(prefix+".choices", "must include at least one entry")
		return q
	}
	for i, choice := range q.Choices {
		if slices.Index(q.Choices, choice) != i {
			collector.add(prefix+".choices", fmt.Sprintf("duplicate entry %q", choice))
		}
	}

	switch q.Marker.Kind {
	case MarkerIndex:
		if q.Marker.Index < 0 || q.Marker.Index >= len(q.Choices) {
			collector.add(prefix+".correct", fmt.Sprintf("index %d out of range [0, %d)", q.Marker.Index, len(q.Choices)))
			return q
		}
		q.Marker.Text = q.Choices[q.Marker.Index]
	default:
		index := slices.Index(q.Choices, q.Marker.Text)
		if index == -1 {
			collector.add(prefix+".correctAnswer", fmt.Sprintf("unknown choice %q", q.Marker.Text))
			return q
		}
		q.Marker.Index = index
	}
	return q
}
