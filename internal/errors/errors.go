package errors

import (
	daverr "github.com/pkg/errors"
)

type notFoundErr struct {
	err error
}

type readErr struct {
	err error
}

type notFounder interface {
	NotFound() bool
}

type readFailurer interface {
	ReadFailure() bool
}

type causer interface {
	Cause() error
}

func (e notFoundErr) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return "not found"
}

func (e notFoundErr) Cause() error      { return e.err }
func (e notFoundErr) NotFound() bool    { return true }
func (e notFoundErr) ReadFailure() bool { return false }

func (e readErr) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return "read failure"
}

func (e readErr) Cause() error      { return e.err }
func (e readErr) NotFound() bool    { return false }
func (e readErr) ReadFailure() bool { return true }

// NotFound marks err as the result of a source that does not exist.
func NotFound(err error) error {
	return notFoundErr{err: err}
}

// ReadFailure marks err as an I/O failure while reading a source.
func ReadFailure(err error) error {
	return readErr{err: err}
}

func IsNotFound(err error) bool {
	for err != nil {
		if nf, ok := err.(notFounder); ok {
			return nf.NotFound()
		}

		if cerr, ok := err.(causer); ok {
			err = cerr.Cause()
		} else {
			return false
		}
	}
	return false
}

func IsReadFailure(err error) bool {
	for err != nil {
		if rf, ok := err.(readFailurer); ok {
			return rf.ReadFailure()
		}

		if cerr, ok := err.(causer); ok {
			err = cerr.Cause()
		} else {
			return false
		}
	}
	return false
}

func New(s string) error {
	return daverr.New(s)
}

func Errorf(s string, args ...interface{}) error {
	return daverr.Errorf(s, args...)
}

func Wrap(err error, s string) error {
	return daverr.Wrap(err, s)
}

func Wrapf(err error, s string, args ...interface{}) error {
	return daverr.Wrapf(err, s, args...)
}
