package service

import "cards/internal/domain/entity"

// AuthorizationGuard decides whether an identity may act on a resource.
//
// The rule is fixed: the identity must hold at least one of requiredRoles, and
// when ownerID is set it must either own the resource or be an admin.
// Implementations are stateless and safe for concurrent use.
type AuthorizationGuard interface {
	Authorize(identity *entity.Identity, requiredRoles entity.Roles, ownerID *int64) error
}
