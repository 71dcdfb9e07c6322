package usecase

import (
	"context"

	"cards/internal/domain/entity"
)

// IdentityUsecase turns the raw Authorization header into the caller's identity.
type IdentityUsecase interface {
	// Resolve returns nil and no error when the header is empty or is not a Bearer credential.
	// Otherwise it fails with ErrTokenExpired, ErrTokenMalformed or ErrUserNotFound.
	Resolve(ctx context.Context, authorizationHeader string) (*entity.Identity, error)
}
