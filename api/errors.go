package api

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned before any request is made.
	ErrValidation = errors.New("invalid request")
	// ErrTransport covers dial, TLS and read failures.
	ErrTransport = errors.New("service unreachable")
	// ErrServer covers non-2xx responses and bodies that cannot be decoded.
	ErrServer = errors.New("service returned an error")
	// ErrMalformed is joined with ErrServer when a body is not the expected JSON.
	ErrMalformed = errors.New("malformed response body")
)

// Error carries the user-facing message for a failed call along with its class.
type Error struct {
	Kind    error
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Message is the text to show a user for err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return err.Error()
}

func validation(op, message string) *Error {
	return &Error{Kind: ErrValidation, Op: op, Message: message}
}
