// Package errors carries user-facing context and suggestions alongside
// ordinary wrapped errors.
package errors

import (
	"errors"
	"fmt"
)

// suggestionError decorates an error with a human actionable suggestion,
// rendered separately from the error message itself.
type suggestionError struct {
	err        error
	suggestion string
}

func (e *suggestionError) Error() string { return e.err.Error() }

func (e *suggestionError) Unwrap() error { return e.err }

// WithContext wraps err with a short operation description.
func WithContext(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WithSuggestion attaches a suggestion to err. The suggestion survives
// further wrapping and is retrieved with GetSuggestion.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &suggestionError{err: err, suggestion: suggestion}
}

// ContainsSuggestion reports whether any error in err's chain carries a
// suggestion.
func ContainsSuggestion(err error) bool {
	var se *suggestionError
	return errors.As(err, &se)
}

// GetSuggestion returns the innermost suggestion in err's chain, or "".
func GetSuggestion(err error) string {
	var se *suggestionError
	if errors.As(err, &se) {
		return se.suggestion
	}
	return ""
}
