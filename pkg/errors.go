package pkg

import (
	"errors"
	"fmt"
)

// Error carries a message for the client, the original cause and a code sentinel that the
// http layer maps to a status.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode returns the code of the first *Error in err's chain, ErrInternalServerError if there is none.
func ErrorCode(err error) error {
	var wrapped *Error
	if errors.As(err, &wrapped) && wrapped.code != nil {
		return wrapped.code
	}
	return ErrInternalServerError
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")
	ErrUnprocessable       = errors.New("given Param can not be processed")
)

var MessageInternalServerError string = "internal server error"
