package controllers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

func parseUUIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError("Invalid id format", name)
	}
	return id, nil
}

// notFound swaps the generic not-found sentinel for a resource-specific
// message; anything else passes through untouched.
func notFound(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(message)
	}
	return err
}
