package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/weixigu/boardgame-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidPlayer    = "INVALID_PLAYER"
	CodeInvalidOutcome   = "INVALID_OUTCOME"
	CodePlayerExists     = "PLAYER_EXISTS"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeDuplicatePlayers = "DUPLICATE_PLAYERS"
	CodeStalePlayer      = "STALE_PLAYER"
	CodeCounterOverflow  = "COUNTER_OVERFLOW"
	CodeMoveNotCurrent   = "MOVE_NOT_CURRENT"
	CodeIndexOutOfRange  = "INDEX_OUT_OF_RANGE"
	CodePageOutOfRange   = "PAGE_OUT_OF_RANGE"
	CodeInvalidSortField = "INVALID_SORT_FIELD"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError; the wrapped sentinel picks
// the status and code while the full message carries the detail
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, err.Error()}}
	case errors.Is(err, model.ErrInvalidOutcome):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOutcome, err.Error()}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, err.Error()}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, err.Error()}}
	case errors.Is(err, model.ErrDuplicatePlayers):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayers, err.Error()}}
	case errors.Is(err, model.ErrPlayerMismatch):
		return &httpError{http.StatusConflict, APIError{CodeStalePlayer, err.Error()}}
	case errors.Is(err, model.ErrCounterOverflow):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCounterOverflow, err.Error()}}
	case errors.Is(err, model.ErrMoveNotCurrent):
		return &httpError{http.StatusBadRequest, APIError{CodeMoveNotCurrent, err.Error()}}
	case errors.Is(err, model.ErrIndexOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeIndexOutOfRange, err.Error()}}
	case errors.Is(err, model.ErrPageOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodePageOutOfRange, err.Error()}}
	case errors.Is(err, model.ErrInvalidSortField):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSortField, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
