package format

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is wrapped by every formatting failure.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError reports a value that could not be formatted.
type FormatError struct {
	Kind   string // "phone number", "time"
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }
