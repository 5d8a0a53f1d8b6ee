package domain

import dErrors "caseflow/pkg/domain-errors"

// Role is the caller's role within their company. It gates a small number of
// operations (template mutation, cost visibility, stage overrides); everything
// else requires only tenant membership.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// validRoles is the single source of truth for supported roles.
var validRoles = map[Role]bool{
	RoleAdmin: true,
	RoleStaff: true,
}

// ParseRole constructs a Role from external input (JWT claims, seed data).
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

// IsValid checks if the role is one of the supported enum values.
func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}
