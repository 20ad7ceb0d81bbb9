package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"termquiz/internal/config"
	"termquiz/internal/question"
	"termquiz/internal/report"
	"termquiz/internal/session"
	"termquiz/internal/ui/live"
	"termquiz/internal/ui/plain"
)

const defaultQuizPath = question.DefaultPath

// loadConfig reads settings from the working directory.
var loadConfig = config.Load

// notifyContext ties the session to Ctrl+C.
var notifyContext = signal.NotifyContext

// console is the full set of interactions a quiz run needs.
type console interface {
	session.Prompter
	session.Reporter
	session.Greeter
}

// runQuiz loads the quiz, plays it and prints the summary.
func runQuiz(quizPath string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return ExitError
	}

	questions, err := question.Load(quizPath)
	if err != nil {
		reportLoadError(stderr, quizPath, err)
		return ExitError
	}

	decision, err := resolveUIMode(cfg.UI, cfg.Verbose, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}

	ctx, stop := notifyContext(context.Background(), os.Interrupt)
	defer stop()

	quizConsole := newConsole(decision, cfg, stdin, stdout)
	s := session.New(cfg.PlayerName)
	if cfg.Greet && s.PlayerName == "" {
		name, err := quizConsole.AskName(ctx)
		if err != nil {
			return reportSessionError(stderr, err)
		}
		s.PlayerName = name
		fmt.Fprintf(stdout, "Hello, %s! Let's begin.\n", name)
	}

	opts := session.Options{NoColor: cfg.NoColor}
	if cfg.Shuffle {
		opts.Randomizer = question.NewRandomizer(uint64(cfg.Seed))
	}
	if cfg.Verbose {
		opts.Verbose = stderr
		if cfg.Source != "" {
			fmt.Fprintf(stderr, "[verbose] Config: %s\n", cfg.Source)
		}
	}
	if err := session.NewRunner(quizConsole, quizConsole, opts).Run(ctx, s, questions); err != nil {
		return reportSessionError(stderr, err)
	}

	summary := session.Summarize(s, len(questions), cfg.Threshold)
	if err := report.Render(stdout, summary, report.Options{NoColor: cfg.NoColor, ShowPercent: cfg.Verbose}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// newConsole picks the live or plain console for the resolved UI mode.
func newConsole(decision uiModeDecision, cfg config.Config, stdin io.Reader, stdout io.Writer) console {
	if decision.useLive {
		return live.New(stdin, stdout, live.Options{FeedbackDelay: cfg.FeedbackDelay, NoColor: cfg.NoColor})
	}
	return plain.New(stdin, stdout, plain.Options{FeedbackDelay: cfg.FeedbackDelay, NoColor: cfg.NoColor})
}

// reportLoadError prints the diagnostic for a quiz file that could not be loaded.
func reportLoadError(stderr io.Writer, quizPath string, err error) {
	var loadErr *question.LoadError
	if errors.As(err, &loadErr) {
		quizPath = loadErr.Path
	}
	switch {
	case errors.Is(err, question.ErrNotFound):
		fmt.Fprintf(stderr, "Error: Quiz file '%s' not found\n", quizPath)
	case errors.Is(err, question.ErrEmpty):
		fmt.Fprintln(stderr, "Error: No questions found in quiz file")
	case loadErr != nil && loadErr.Err != nil:
		fmt.Fprintf(stderr, "Error loading questions: %v\n", loadErr.Err)
	default:
		fmt.Fprintf(stderr, "Error loading questions: %v\n", err)
	}
}

// reportSessionError prints why a session ended early.
func reportSessionError(stderr io.Writer, err error) int {
	if errors.Is(err, session.ErrAborted) {
		fmt.Fprintln(stderr, "Quiz aborted")
		return ExitError
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
