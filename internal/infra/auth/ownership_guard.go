package auth

import (
	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/service"
	"cards/internal/errors"
)

type ownershipGuard struct{}

// NewOwnershipGuard returns the "owner or admin" AuthorizationGuard.
func NewOwnershipGuard() service.AuthorizationGuard {
	return ownershipGuard{}
}

// Authorize allows the call when the identity holds one of requiredRoles and,
// for owned resources, is the owner or an admin.
func (ownershipGuard) Authorize(identity *entity.Identity, requiredRoles entity.Roles, ownerID *int64) error {
	if identity == nil {
		return errors.Wrap(domainerrors.ErrForbidden, "no identity")
	}

	if !identity.Roles.Intersects(requiredRoles) {
		return errors.Wrapf(domainerrors.ErrForbidden, "principal %d lacks roles [%s]", identity.PrincipalID, requiredRoles.Join())
	}

	if ownerID == nil || *ownerID == identity.PrincipalID || identity.IsAdmin() {
		return nil
	}

	return errors.Wrapf(domainerrors.ErrForbidden, "principal %d does not own resource of %d", identity.PrincipalID, *ownerID)
}
