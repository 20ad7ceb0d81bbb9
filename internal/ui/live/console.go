package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termquiz/internal/session"
)

// Options configures the live console.
type Options struct {
	FeedbackDelay time.Duration
	NoColor       bool
	// ProgramOptions are appended to every Bubble Tea program the console starts.
	ProgramOptions []tea.ProgramOption
}

// Console runs one short Bubble Tea program per interaction, so each prompt
// and each feedback delay blocks until it resolves.
type Console struct {
	in     io.Reader
	out    io.Writer
	opts   Options
	styles styles
}

// New builds a live console on the given terminal streams.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Console{in: in, out: out, opts: opts, styles: newStyles(out, opts.NoColor)}
}

// Choose shows the choices and returns the one the player selects.
func (c *Console) Choose(ctx context.Context, prompt session.Prompt) (string, error) {
	final, err := c.run(ctx, newSelectModel(prompt, c.styles))
	if err != nil {
		return "", err
	}
	model, ok := final.(selectModel)
	if !ok || model.aborted || !model.done {
		return "", session.ErrAborted
	}
	return model.selected, nil
}

// Report spins for the feedback delay and then prints the verdict.
func (c *Console) Report(ctx context.Context, verdict session.Verdict) error {
	final, err := c.run(ctx, newFeedbackModel(verdict, c.opts.FeedbackDelay, c.styles))
	if err != nil {
		return err
	}
	if model, ok := final.(feedbackModel); !ok || model.aborted {
		return session.ErrAborted
	}
	return nil
}

// AskName reads the player's name.
func (c *Console) AskName(ctx context.Context) (string, error) {
	final, err := c.run(ctx, newNameModel(c.styles))
	if err != nil {
		return "", err
	}
	model, ok := final.(nameModel)
	if !ok || model.aborted || !model.done {
		return "", session.ErrAborted
	}
	return model.name, nil
}

// run starts a program and waits for it to quit.
func (c *Console) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := []tea.ProgramOption{
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
		tea.WithContext(ctx),
	}
	options = append(options, c.opts.ProgramOptions...)
	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", session.ErrAborted, err)
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
