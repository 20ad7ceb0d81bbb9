package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteQuiz writes a quiz file into a fresh temp directory and returns its path.
func WriteQuiz(t testing.TB, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

// ThreeQuestionQuiz has correct answers "Paris", "4" and "blue" (index 1).
const ThreeQuestionQuiz = `{
  "questions": [
    {"name": "capital", "type": "list", "message": "Capital of France?", "choices": ["Berlin", "Paris", "Rome"], "correctAnswer": "Paris"},
    {"name": "sum", "type": "list", "message": "2 + 2?", "choices": ["3", "4", "5"], "correctAnswer": "4"},
    {"name": "sky", "type": "list", "message": "Sky color?", "choices": ["red", "blue"], "correct": 1}
  ]
}`

// OneQuestionQuiz has the single correct answer "Go".
const OneQuestionQuiz = `{"questions": [{"name": "lang", "type": "list", "message": "Best gopher language?", "choices": ["Go", "Java"], "correctAnswer": "Go"}]}`
