// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleMember indicates a regular card owner.
	RoleMember Role = "member"
	// RoleAdmin indicates an administrator who may act on any user's cards.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Intersects reports whether at least one role is shared with other.
func (rs Roles) Intersects(other Roles) bool {
	return slices.ContainsFunc(rs, other.Contains)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Join renders the roles as a comma separated list, the storage representation.
func (rs Roles) Join() string {
	return strings.Join(rs.ToStrings(), ",")
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}

// ParseRoles splits a comma separated list produced by Roles.Join.
func ParseRoles(s string) Roles {
	if strings.TrimSpace(s) == "" {
		return Roles{}
	}

	return RolesFromStrings(strings.Split(s, ","))
}
