package question

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that the quiz file does not exist.
var ErrNotFound = errors.New("quiz file not found")

// ErrFormat indicates that the quiz file could not be parsed or has the wrong shape.
var ErrFormat = errors.New("invalid quiz file")

// ErrEmpty indicates that the quiz file parsed but holds no questions.
var ErrEmpty = errors.New("no questions found in quiz file")

// LoadError reports why a quiz file could not be loaded. Kind is one of
// ErrNotFound, ErrFormat or ErrEmpty.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

// Error returns a readable message for the load failure.
func (err *LoadError) Error() string {
	if err == nil {
		return ""
	}
	switch {
	case err.Kind == ErrNotFound:
		return fmt.Sprintf("quiz file %q not found", err.Path)
	case err.Err != nil:
		return fmt.Sprintf("load %s: %v", err.Path, err.Err)
	case err.Kind != nil:
		return fmt.Sprintf("load %s: %v", err.Path, err.Kind)
	default:
		return fmt.Sprintf("load %s failed", err.Path)
	}
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (err *LoadError) Unwrap() []error {
	if err == nil {
		return nil
	}
	wrapped := make([]error, 0, 2)
	if err.Kind != nil {
		wrapped = append(wrapped, err.Kind)
	}
	if err.Err != nil {
		wrapped = append(wrapped, err.Err)
	}
	return wrapped
}
