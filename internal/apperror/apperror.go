// Package apperror holds the client-facing error conditions raised by the
// handlers and the store.
package apperror

import (
	"fmt"
	"net/http"
)

const (
	MsgBadRequest          = "bad request"
	MsgNotFound            = "not found"
	MsgInternalServerError = "internal server error"
)

// Error is a classified failure carrying the HTTP status and message shown to
// the client.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Msg)
}

// Is reports a match on status, so errors.Is(err, ErrNotFound) works for any
// not-found instance.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Status == t.Status
}

var (
	ErrBadRequest = &Error{Status: http.StatusBadRequest, Msg: MsgBadRequest}
	ErrNotFound   = &Error{Status: http.StatusNotFound, Msg: MsgNotFound}
)

func BadRequest() error {
	return &Error{Status: http.StatusBadRequest, Msg: MsgBadRequest}
}

func NotFound() error {
	return &Error{Status: http.StatusNotFound, Msg: MsgNotFound}
}
