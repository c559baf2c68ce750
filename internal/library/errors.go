package library

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFile is returned when an import has no file attached.
	ErrNoFile = errors.New("library: please choose a file")
	// ErrNoCards is returned when a file parses to zero flashcards.
	ErrNoCards = errors.New("library: no valid cards found in CSV file")
	// ErrNotFound is returned when a requested deck does not exist.
	ErrNotFound = errors.New("library: deck not found")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// IsInputError reports whether err was caused by the caller's input rather
// than by storage.
func IsInputError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrNoFile) || errors.Is(err, ErrNoCards)
}
