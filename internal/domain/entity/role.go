// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/pkg/errors"
)

// Role represents the type of account a user holds on the platform.
type Role string

const (
	// RoleUser indicates a regular shopper account.
	RoleUser Role = "user"
	// RoleStylist indicates a stylist who publishes lookbooks for others.
	RoleStylist Role = "stylist"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStylist, RoleAdmin:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects roles outside the known set.
// An empty role decodes to RoleUser, which is what the backend assumes.
func (r *Role) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RoleUser

		return nil
	}

	role := Role(text)
	if !role.IsValid() {
		return errors.Errorf("unknown role %q", string(text))
	}
	*r = role

	return nil
}

// ParseRole converts a string into a Role.
func ParseRole(s string) (Role, error) {
	var r Role
	if err := r.UnmarshalText([]byte(s)); err != nil {
		return "", err
	}

	return r, nil
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
