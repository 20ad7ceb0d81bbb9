package cli

import (
	"fmt"
	"io"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes the quiz for the given arguments and returns the exit code.
// With no arguments it loads questions.json; one argument names a quiz file.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	quizPath, ok := parseArgs(args, stdout, stderr)
	if !ok {
		return ExitError
	}
	return runQuiz(quizPath, stdin, stdout, stderr)
}

// parseArgs resolves the quiz path. It prints usage and reports false for
// help requests and argument errors.
func parseArgs(args []string, stdout, stderr io.Writer) (string, bool) {
	switch {
	case len(args) > 1:
		fmt.Fprintln(stderr, "Error: Too many arguments")
		printUsage(stdout)
		return "", false
	case len(args) == 1 && isHelpArg(args[0]):
		printUsage(stdout)
		return "", false
	case len(args) == 1:
		return args[0], true
	default:
		return defaultQuizPath, true
	}
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help":
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %-24s %s\n", "termquiz", "Run with default "+defaultQuizPath)
	fmt.Fprintf(w, "  %-24s %s\n", "termquiz <filename.json>", "Run with specific quiz file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings are read from termquiz.yaml, .env and TERMQUIZ_* variables:")
	fmt.Fprintln(w, "  shuffle, seed, feedback_delay, good_threshold, greet, player_name, ui, no_color, verbose")
}
