package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"termquiz/internal/question"
)

// ErrAborted indicates the player left the quiz before it finished.
var ErrAborted = errors.New("quiz aborted")

// ErrInvalidChoice indicates a prompter returned text outside the presented choices.
var ErrInvalidChoice = errors.New("selection is not one of the choices")

// Prompt is what the player sees for one question.
type Prompt struct {
	Index   int
	Total   int
	Name    string
	Message string
	Choices []string
}

// Verdict is the outcome handed to a Reporter after a selection.
type Verdict struct {
	Index    int
	Total    int
	Correct  bool
	Selected string
	Expected string
}

// Prompter asks the player to pick exactly one of the prompt's choices.
type Prompter interface {
	Choose(ctx context.Context, prompt Prompt) (string, error)
}

// Reporter presents the verdict for an answered question.
type Reporter interface {
	Report(ctx context.Context, verdict Verdict) error
}

// Greeter asks the player for a name before the quiz starts.
type Greeter interface {
	AskName(ctx context.Context) (string, error)
}

// Options configures a Runner.
type Options struct {
	// Randomizer shuffles displayed choices. Nil keeps file order.
	Randomizer *question.Randomizer
	// Verbose receives debug lines when non-nil.
	Verbose io.Writer
	NoColor bool
}

// Runner drives a session through a list of questions.
type Runner struct {
	prompter Prompter
	reporter Reporter
	opts     Options
}

// NewRunner constructs a Runner.
func NewRunner(prompter Prompter, reporter Reporter, opts Options) *Runner {
	return &Runner{prompter: prompter, reporter: reporter, opts: opts}
}

// Run asks every question in order, reports each verdict and records it on s.
// Each question completes before the next is shown; none is skipped or revisited.
func (r *Runner) Run(ctx context.Context, s *Session, questions []question.Question) error {
	verbose := newVerboseSink(r.opts.Verbose, r.opts.NoColor)
	verbose.printf("Session %s started with %d questions", s.ID, len(questions))
	if r.opts.Randomizer != nil {
		verbose.printf("Shuffling choices with seed %d", r.opts.Randomizer.Seed())
	}

	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrAborted, err)
		}
		choices := q.Choices
		if r.opts.Randomizer != nil {
			choices = r.opts.Randomizer.Shuffle(q).Choices
		}

		selected, err := r.prompter.Choose(ctx, Prompt{
			Index:   i,
			Total:   len(questions),
			Name:    q.Name,
			Message: q.Message,
			Choices: choices,
		})
		if err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("question %d: %w: %v", i+1, ErrAborted, err)
		}
		if !q.HasChoice(selected) {
			return fmt.Errorf("question %d: %w: %q", i+1, ErrInvalidChoice, selected)
		}

		correct := q.IsCorrect(selected)
		verbose.printf("Selected answer: %s", selected)
		verbose.printf("Is correct? %t", correct)

		verdict := Verdict{
			Index:    i,
			Total:    len(questions),
			Correct:  correct,
			Selected: selected,
			Expected: q.CorrectText(),
		}
		if err := r.reporter.Report(ctx, verdict); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("question %d: %w: %v", i+1, ErrAborted, err)
		}
		s.Record(Answer{
			Index:    i,
			Name:     q.Name,
			Selected: selected,
			Expected: verdict.Expected,
			Correct:  correct,
		})
	}

	for _, answer := range s.Answers {
		mark := "x"
		if answer.Correct {
			mark = "ok"
		}
		verbose.printf("Q%d %s [%s] selected=%q expected=%q", answer.Index+1, answer.Name, mark, answer.Selected, answer.Expected)
	}
	return nil
}
