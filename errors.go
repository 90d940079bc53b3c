package sqlscript

import (
	"github.com/schemalex/sqlscript/internal/errors"
)

// SourceError is returned when a ScriptSource cannot produce its script.
// NotFound tells a missing source apart from any other read failure.
type SourceError interface {
	error
	Source() string
	NotFound() bool
}

type sourceError struct {
	source string
	err    error
}

// Source returns the name (usually the path) of the failing source
func (e sourceError) Source() string { return e.source }

// NotFound returns true if the source does not exist
func (e sourceError) NotFound() bool { return errors.IsNotFound(e.err) }

func (e sourceError) Cause() error { return e.err }

func (e sourceError) Error() string {
	return e.err.Error()
}

func newNotFoundError(source string, err error) error {
	return &sourceError{
		source: source,
		err:    errors.NotFound(err),
	}
}

func newReadError(source string, err error) error {
	return &sourceError{
		source: source,
		err:    errors.ReadFailure(err),
	}
}

// IsNotFound returns true if err, or any error it wraps, reports a
// script source that does not exist.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsReadError returns true if err, or any error it wraps, reports a
// failure while reading a script source that does exist.
func IsReadError(err error) bool {
	return errors.IsReadFailure(err)
}
