package utils

import (
	"context"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
)

func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrClaimsNotFoundInContext
	}
	return id, nil
}

func GetCompanyIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.CompanyIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrClaimsNotFoundInContext
	}
	return id, nil
}
