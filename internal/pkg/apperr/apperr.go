// Package apperr carries the error taxonomy of the repository layer.
// Every repository operation surfaces one of four kinds so that the
// transport layer can map them without inspecting storage internals.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: a referenced named/identified entity does not exist.
	KindNotFound
	// KindValidation: a value violates a structural invariant before any
	// persistence attempt (coordinate shape, unit cardinality).
	KindValidation
	// KindIntegrity: a uniqueness or non-null constraint was violated at
	// flush/commit time.
	KindIntegrity
	// KindConnectivity: the storage backend is unreachable.
	KindConnectivity
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity"
	case KindConnectivity:
		return "connectivity"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

func Integrityf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIntegrity, Err: fmt.Errorf(format, args...)}
}

func Connectivityf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConnectivity, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsIntegrity(err error) bool    { return KindOf(err) == KindIntegrity }
func IsConnectivity(err error) bool { return KindOf(err) == KindConnectivity }
