package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeQuiz(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

// TestLoadTextMarkers verifies correctAnswer questions load in file order.
func TestLoadTextMarkers(t *testing.T) {
	path := writeQuiz(t, "questions.json", `{
  "questions": [
    {
      "name": "capital",
      "type": "list",
      "message": "Capital of France?",
      "choices": ["Berlin", "Paris", "Rome"],
      "correctAnswer": "Paris"
    },
    {
      "name": "sum",
      "type": "list",
      "message": "2 + 2?",
      "choices": ["3", "4"],
      "correctAnswer": "4"
    }
  ]
}`)
	questions, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	q := questions[0]
	if q.Name != "capital" || q.Message != "Capital of France?" {
		t.Fatalf("unexpected first question: %+v", q)
	}
	if q.Marker.Kind != MarkerText || q.Marker.Index != 1 || q.CorrectText() != "Paris" {
		t.Fatalf("unexpected marker: %+v", q.Marker)
	}
	if questions[1].Name != "sum" {
		t.Fatalf("expected file order to be kept, got %q second", questions[1].Name)
	}
}

// TestLoadIndexMarkers verifies zero-based correct indexes resolve to text.
func TestLoadIndexMarkers(t *testing.T) {
	path := writeQuiz(t, "quiz.json", `{"questions":[{"name":"q1","type":"list","message":"Pick b","choices":["a","b","c"],"correct":1}]}`)
	questions, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	q := questions[0]
	if q.Marker.Kind != MarkerIndex {
		t.Fatalf("expected index marker, got %v", q.Marker.Kind)
	}
	if q.CorrectText() != "b" {
		t.Fatalf("expected resolved text b, got %q", q.CorrectText())
	}
}

// TestLoadYAML verifies YAML quiz files share the JSON shape.
func TestLoadYAML(t *testing.T) {
	path := writeQuiz(t, "quiz.yml", `questions:
  - name: color
    message: Sky color?
    choices: [red, blue]
    correctAnswer: blue
`)
	questions, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 1 || questions[0].Type != TypeList {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

// TestLoadMissingFile verifies a missing file is reported as not found.
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	questions, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if questions != nil {
		t.Fatalf("expected no questions, got %+v", questions)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != path {
		t.Fatalf("expected load error naming %q, got %v", path, err)
	}
}

// TestLoadMalformedJSON verifies syntax errors are format errors.
func TestLoadMalformedJSON(t *testing.T) {
	path := writeQuiz(t, "broken.json", `{"questions": [`)
	_, err := Load(path)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("did not expect not found error")
	}
}

// TestLoadShapeErrors verifies shape mismatches are format errors.
func TestLoadShapeErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "array root", payload: `[]`},
		{name: "missing questions", payload: `{}`},
		{name: "questions not a list", payload: `{"questions": "x"}`},
		{name: "no marker", payload: `{"questions":[{"message":"m","choices":["a"]}]}`},
		{name: "index out of range", payload: `{"questions":[{"message":"m","choices":["a"],"correct":3}]}`},
		{name: "duplicate index target", payload: `{"questions":[{"message":"m","choices":["A","A"],"correct":1}]}`},
		{name: "unknown answer", payload: `{"questions":[{"message":"m","choices":["a"],"correctAnswer":"A"}]}`},
		{name: "wrong type", payload: `{"questions":[{"type":"checkbox","message":"m","choices":["a"],"correct":0}]}`},
		{name: "markers disagree", payload: `{"questions":[{"message":"m","choices":["a","b"],"correct":0,"correctAnswer":"b"}]}`},
		{name: "trailing document", payload: `{"questions":[]} {}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeQuiz(t, "quiz.json", tc.payload)
			_, err := Load(path)
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("expected format error, got %v", err)
			}
		})
	}
}

// TestLoadValidationIssues verifies resolution problems carry field paths.
func TestLoadValidationIssues(t *testing.T) {
	path := writeQuiz(t, "quiz.json", `{"questions":[
  {"message":"ok","choices":["a"],"correct":0},
  {"message":"","choices":[],"correct":0},
  {"message":"twice","choices":["A","A","B"],"correctAnswer":"A"}
]}`)
	_, err := Load(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validationErr.Issues)
	}
	if validationErr.Issues[0].Field != "questions[1].message" {
		t.Fatalf("unexpected first issue: %+v", validationErr.Issues[0])
	}
	duplicate := validationErr.Issues[2]
	if duplicate.Field != "questions[2].choices" || duplicate.Message != `duplicate entry "A"` {
		t.Fatalf("unexpected duplicate issue: %+v", duplicate)
	}
}

// TestLoadEmptyQuestions verifies an empty list is reported as empty.
func TestLoadEmptyQuestions(t *testing.T) {
	path := writeQuiz(t, "empty.json", `{"questions": []}`)
	_, err := Load(path)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected empty error, got %v", err)
	}
}

// TestLoadDefaultPath verifies an empty path falls back to questions.json.
func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, err := Load("")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	if loadErr.Path != DefaultPath {
		t.Fatalf("expected default path %q, got %q", DefaultPath, loadErr.Path)
	}
}
