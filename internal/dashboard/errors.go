package dashboard

import (
	"errors"
	"fmt"

	"github.com/omkarsindha/GSM-Alarm/internal/client"
	"github.com/omkarsindha/GSM-Alarm/internal/format"
)

// ErrValidation client-side check failed; nothing was sent.
var ErrValidation = errors.New("validation failed")

// ValidationError rejected form field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrorKind failure taxonomy of the dashboard
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindTransport  ErrorKind = "transport"  // fetch/parse failure, operation abandoned
	KindBusiness   ErrorKind = "business"   // backend answered success=false
	KindValidation ErrorKind = "validation" // client-side check, submission aborted
	KindFormat     ErrorKind = "format"     // a backend value could not be formatted
	KindUnknown    ErrorKind = "unknown"
)

// Classify maps err onto the taxonomy. Transport wins over format when
// both are present in a joined error.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, client.ErrTransport):
		return KindTransport
	case errors.Is(err, client.ErrBusiness):
		return KindBusiness
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, format.ErrInvalidFormat):
		return KindFormat
	default:
		return KindUnknown
	}
}
