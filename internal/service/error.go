package service

import "errors"

var (
	ErrUnauthorized = errors.New("UNAUTHORIZED")
	ErrInvalidBody  = errors.New("INVALID_REQUEST_BODY")
	ErrRequestID    = errors.New("REQUEST_ID_UNAVAILABLE")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
