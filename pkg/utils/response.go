package utils

import (
	"errors"
	"net/http"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusByErr maps sentinel errors to HTTP status codes for the cases where
// a repository or service returns a bare sentinel instead of an HttpError.
var statusByErr = map[error]int{
	apperrors.ErrNotFound:                http.StatusNotFound,
	apperrors.ErrBadRequest:              http.StatusBadRequest,
	apperrors.ErrInvalidCredentials:      http.StatusUnauthorized,
	apperrors.ErrUnauthorized:            http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:         http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidToken:            http.StatusUnauthorized,
	apperrors.ErrTokenExpired:            http.StatusUnauthorized,
	apperrors.ErrClaimsNotFoundInContext: http.StatusUnauthorized,
	apperrors.ErrAccountInactive:         http.StatusForbidden,
}

// ErrorResponse translates any error into the client-facing JSON shape
// {"error": "...", "field": "..."}. Full detail goes to the server log only.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Internal server error"
	var field string

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Details != nil {
			if f, ok := httpErr.Details["field"].(string); ok {
				field = f
			}
		}
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "Validation failed"
		if len(validationErrs) > 0 {
			fe := validationErrs[0]
			field = JSONFieldName(fe)
			message = validationMessage(fe)
		}
	default:
		for sentinel, status := range statusByErr {
			if errors.Is(err, sentinel) {
				code = status
				message = sentinel.Error()
				break
			}
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	payload := echo.Map{"error": message}
	if field != "" {
		payload["field"] = field
	}
	return ctx.JSON(code, payload)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "All fields are required"
	case "email":
		return "Invalid email format"
	case "strong_password":
		return "Password must be at least 8 characters and contain uppercase, lowercase, and special character"
	case "request_stage":
		return "Invalid stage"
	case "request_priority":
		return "Invalid priority"
	case "maintenance_type":
		return "Invalid maintenance type"
	default:
		return "Invalid value for field " + JSONFieldName(fe)
	}
}
