package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// Tokens and authorization.
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token expired")
	ErrEmptyAuthHeader      = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader    = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials   = fmt.Errorf("invalid email or password")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrAccountInactive      = fmt.Errorf("account is inactive")

	// Context.
	ErrClaimsNotFoundInContext = fmt.Errorf("auth claims not found in request context")

	// Common.
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries the status code and client-facing message across the
// service boundary; the wrapped error stays server-side (logs only).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message, field string) *HttpError {
	var details map[string]interface{}
	if field != "" {
		details = map[string]interface{}{"field": field}
	}
	return NewHttpError(http.StatusBadRequest, message, nil, details)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

func NewConflictError(message, field string) *HttpError {
	var details map[string]interface{}
	if field != "" {
		details = map[string]interface{}{"field": field}
	}
	return NewHttpError(http.StatusConflict, message, nil, details)
}

func NewInternalError(message string, err error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, message, err, nil)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
