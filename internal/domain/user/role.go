package user

import "slices"

// Role decides which side of a match an account stands on.
type Role string

const (
	RoleSupplier Role = "supplier"
	RoleVisitor  Role = "visitor"
	RoleAdmin    Role = "admin"
)

var roles = []Role{RoleSupplier, RoleVisitor, RoleAdmin}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return slices.Contains(roles, r) }
