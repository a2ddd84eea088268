package handler

import (
	"net/http"

	"github.com/weixigu/boardgame-go/internal/api/apierr"
)

// APIError is re-exported for convenience
type APIError = apierr.APIError

// WriteError writes an error response
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
