// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered principal. Email is the unique login identifier.
type User struct {
	ID           int64     // Storage generated identifier.
	Email        string    // Unique login identifier, also the token subject.
	PasswordHash string    // bcrypt digest of the credential; never rendered.
	Roles        Roles     // Granted roles, at least RoleMember.
	Cards        []*Card   // Owned cards, only populated by profile lookups.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Identity is the per-request view of an authenticated principal.
// It is derived from a verified token and never persisted.
type Identity struct {
	PrincipalID int64
	Roles       Roles
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Roles.Contains(RoleAdmin)
}
