package session

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const verbosePrefix = "[verbose]"

// verboseSink writes prefixed debug lines. A nil writer discards them.
type verboseSink struct {
	writer io.Writer
	prefix string
}

func newVerboseSink(writer io.Writer, noColor bool) verboseSink {
	if writer == nil {
		return verboseSink{}
	}
	prefix := verbosePrefix
	if !noColor && shouldUseStyling(writer) {
		prefix = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("244")).Render(prefix)
	}
	return verboseSink{writer: writer, prefix: prefix}
}

func (sink verboseSink) printf(format string, args ...any) {
	if sink.writer == nil {
		return
	}
	fmt.Fprintf(sink.writer, "%s %s\n", sink.prefix, fmt.Sprintf(format, args...))
}

// shouldUseStyling reports whether ANSI styling should be enabled.
func shouldUseStyling(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
