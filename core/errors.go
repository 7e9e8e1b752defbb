package core

import "github.com/pkg/errors"

// FieldError carries a per-field message for responses that report
// validation failures field by field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a domain rule violation: the value decoded fine but
// the domain rejects it, such as an unknown fee status. The API layer
// renders Fields as a field-to-message map when they are set.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks a condition the process cannot serve through, such as the
// record store rejecting our credentials. The API layer responds 500 and
// triggers a graceful stop.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, at its cause, asks for a process stop.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
