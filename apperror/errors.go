package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP responses.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindUpstream       Kind = "UPSTREAM"
	KindPersistence    Kind = "PERSISTENCE"
)

type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error {
	return newError(KindValidation, message, nil)
}

func Authentication(message string) *Error {
	return newError(KindAuthentication, message, nil)
}

func Authorization(message string) *Error {
	return newError(KindAuthorization, message, nil)
}

func NotFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

func Conflict(message string) *Error {
	return newError(KindConflict, message, nil)
}

func Upstream(message string, err error) *Error {
	return newError(KindUpstream, message, err)
}

func Persistence(message string, err error) *Error {
	return newError(KindPersistence, message, err)
}

func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// HTTPStatus maps an error to its response status code. Anything outside the
// taxonomy is treated as an unexpected failure.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// As unwraps err into *Error when possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
