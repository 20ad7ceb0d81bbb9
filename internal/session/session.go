package session

import "github.com/google/uuid"

// DefaultPlayerName is used when a greeting prompt is answered with nothing.
const DefaultPlayerName = "Player"

// Answer records the outcome of one answered question.
type Answer struct {
	Index    int
	Name     string
	Selected string
	Expected string
	Correct  bool
}

// Session holds the state of a single quiz run. It is discarded on exit.
type Session struct {
	ID         string
	PlayerName string
	Score      int
	Answers    []Answer
}

// New starts a session with a zero score.
func New(playerName string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		PlayerName: playerName,
	}
}

// Record appends an answer and increments the score when it is correct.
func (s *Session) Record(answer Answer) {
	s.Answers = append(s.Answers, answer)
	if answer.Correct {
		s.Score++
	}
}
