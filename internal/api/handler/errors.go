package handler

import (
	"net/http"

	"github.com/mcoot/pickleball-finder/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeInvalidFilter        = apierr.CodeInvalidFilter
	CodeInvalidProfile       = apierr.CodeInvalidProfile
	CodeEmptyMessage         = apierr.CodeEmptyMessage
	CodeMessageTooLong       = apierr.CodeMessageTooLong
	CodeUnauthorized         = apierr.CodeUnauthorized
	CodeForbidden            = apierr.CodeForbidden
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeNotificationNotFound = apierr.CodeNotificationNotFound
	CodeContactNotAllowed    = apierr.CodeContactNotAllowed
	CodeUsernameExists       = apierr.CodeUsernameExists
	CodeInvalidCredentials   = apierr.CodeInvalidCredentials
	CodeNotFound             = apierr.CodeNotFound
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
