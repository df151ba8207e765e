// Package apperr defines the error taxonomy every layer of Vitrine reports
// through: NotFound, InvalidRequest and Unavailable. Controllers map an
// *apperr.Error straight to an HTTP status; repositories translate store
// errors (gorm.ErrRecordNotFound and friends) into it so nothing above the
// data layer ever inspects driver errors.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindNotFound — the referenced entity does not exist.
	KindNotFound Kind = iota
	// KindInvalid — syntactically fine input that is semantically wrong
	// (insufficient stock, rating out of range, unknown filter field).
	KindInvalid
	// KindUnavailable — the persistence layer failed.
	KindUnavailable
)

// Error is a typed application error carrying its HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NotFound builds a KindNotFound error, e.g. apperr.NotFound("energy drink").
func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// Invalid builds a KindInvalid error with a client-facing message.
func Invalid(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a store failure.
func Unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: "storage unavailable", Err: err}
}

// IsNotFound reports whether err is (or wraps) a KindNotFound error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsInvalid reports whether err is (or wraps) a KindInvalid error.
func IsInvalid(err error) bool { return isKind(err, KindInvalid) }

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
