package errresponse

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
)

// Postgres error codes the API answers with a client error.
const (
	pqNumericValueOutOfRange    = "22003"
	pqInvalidTextRepresentation = "22P02"
	pqUndefinedColumn           = "42703"
	pqForeignKeyViolation       = "23503"
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Msg string `json:"msg"` // user-level status message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// Classifier turns an error into a response, or reports false when it does
// not recognise it.
type Classifier func(err error) (*ErrResponse, bool)

// Chain is tried in order by From; the first match wins.
var Chain = []Classifier{
	ifAppError,
	ifPqBadRequest,
	ifPqNotFound,
	ifDecodeError,
}

// From classifies err with Chain, falling back to a 500.
func From(err error) *ErrResponse {
	for _, classify := range Chain {
		if resp, ok := classify(err); ok {
			return resp
		}
	}

	return ErrInternal(err)
}

// Render classifies err and writes it as the response.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	RenderResponse(w, r, From(err))
}

// RenderResponse writes resp, logging server errors with the request logger.
func RenderResponse(w http.ResponseWriter, r *http.Request, resp *ErrResponse) {
	logger := logging.FromContext(r.Context())
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		logger.Errorw("request failed", "status", resp.HTTPStatusCode, "error", resp.Err)
	} else if resp.Err != nil {
		logger.Debugw("request rejected", "status", resp.HTTPStatusCode, "error", resp.Err.Error())
	}

	if err := render.Render(w, r, resp); err != nil {
		logger.Errorw(err.Error())
	}
}

func ErrInvalidRequest(err error) *ErrResponse {
	return &ErrResponse{Err: err, HTTPStatusCode: http.StatusBadRequest, Msg: apperror.MsgBadRequest}
}

func ErrInternal(err error) *ErrResponse {
	return &ErrResponse{Err: err, HTTPStatusCode: http.StatusInternalServerError, Msg: apperror.MsgInternalServerError}
}

// nolint
var (
	ErrNotFound         = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Msg: apperror.MsgNotFound}
	ErrMethodNotAllowed = &ErrResponse{HTTPStatusCode: http.StatusMethodNotAllowed, Msg: "method not allowed"}
)

func ifAppError(err error) (*ErrResponse, bool) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return nil, false
	}

	return &ErrResponse{Err: err, HTTPStatusCode: appErr.Status, Msg: appErr.Msg}, true
}

func ifPqBadRequest(err error) (*ErrResponse, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil, false
	}

	switch pqErr.Code {
	case pqNumericValueOutOfRange, pqInvalidTextRepresentation, pqUndefinedColumn:
		return ErrInvalidRequest(err), true
	}

	return nil, false
}

func ifPqNotFound(err error) (*ErrResponse, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqForeignKeyViolation {
		return nil, false
	}

	return &ErrResponse{Err: err, HTTPStatusCode: http.StatusNotFound, Msg: apperror.MsgNotFound}, true
}

func ifDecodeError(err error) (*ErrResponse, bool) {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrInvalidRequest(err), true
	}

	return nil, false
}
