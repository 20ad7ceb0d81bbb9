package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termquiz/internal/session"
)

// Options configures a plain console.
type Options struct {
	FeedbackDelay time.Duration
	NoColor       bool
	// Sleep waits between the checking line and the verdict. Defaults to a
	// context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Console asks questions over line-oriented input. It is used when stdin or
// stdout is not a terminal.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer
	opts     Options
	// lines carries the result of the read in flight, if any. A read
	// abandoned by cancellation is picked up by the next readLine.
	lines   chan lineResult
	pending bool
}

type lineResult struct {
	line string
	err  error
}

// New builds a console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		opts:     opts,
		lines:    make(chan lineResult, 1),
	}
}

// Choose prints the numbered choices and reads until a valid pick arrives.
// A pick is either a choice number or the exact choice text.
func (c *Console) Choose(ctx context.Context, prompt session.Prompt) (string, error) {
	fmt.Fprintf(c.out, "\n%s %s\n", c.style("?", "42", true), c.style(prompt.Message, "", true))
	for i, choice := range prompt.Choices {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, choice)
	}
	for {
		fmt.Fprintf(c.out, "Your answer (1-%d): ", len(prompt.Choices))
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if choice, ok := matchChoice(prompt.Choices, line); ok {
			return choice, nil
		}
		fmt.Fprintf(c.out, "Please enter a number between 1 and %d.\n", len(prompt.Choices))
	}
}

// Report prints the checking line, waits, then prints the verdict.
func (c *Console) Report(ctx context.Context, verdict session.Verdict) error {
	fmt.Fprintln(c.out, c.style("Checking answer...", "244", false))
	if c.opts.FeedbackDelay > 0 {
		if err := c.opts.Sleep(ctx, c.opts.FeedbackDelay); err != nil {
			return fmt.Errorf("%w: %v", session.ErrAborted, err)
		}
	}
	if verdict.Correct {
		fmt.Fprintln(c.out, c.style("✔ Correct! 🎉", "42", false))
		return nil
	}
	fmt.Fprintln(c.out, c.style("✖ Wrong! 😢", "196", false))
	fmt.Fprintf(c.out, "  You answered: %s\n", verdict.Selected)
	fmt.Fprintf(c.out, "  Correct answer: %s\n", verdict.Expected)
	return nil
}

// AskName reads the player's name, defaulting when the line is blank.
func (c *Console) AskName(ctx context.Context) (string, error) {
	fmt.Fprint(c.out, "What is your name? ")
	line, err := c.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return session.DefaultPlayerName, nil
	}
	return line, nil
}

// readLine returns the next trimmed input line. End of input or a cancelled
// context aborts the quiz.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", session.ErrAborted, err)
	}
	if !c.pending {
		c.pending = true
		go func() {
			line, err := c.in.ReadString('\n')
			c.lines <- lineResult{line: line, err: err}
		}()
	}
	var result lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", fmt.Errorf("%w: %v", session.ErrAborted, ctx.Err())
	case result = <-c.lines:
		c.pending = false
	}
	line, err := result.line, result.err
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", fmt.Errorf("%w: input ended", session.ErrAborted)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// matchChoice resolves a typed line to a choice by number or exact text.
func matchChoice(choices []string, line string) (string, bool) {
	if line == "" {
		return "", false
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
	}
	for _, choice := range choices {
		if choice == line {
			return choice, true
		}
	}
	return "", false
}

// style applies optional color styling.
func (c *Console) style(text, color string, bold bool) string {
	if c.opts.NoColor {
		return text
	}
	style := c.renderer.NewStyle().Bold(bold)
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style.Render(text)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
