package auth

import "strings"

// Role is the access level carried in the token's role claim. The three
// roles form a strict hierarchy: User < Admin < SuperAdmin.
type Role string

const (
	RoleUser       Role = "User"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

func (r Role) rank() int {
	switch r {
	case RoleUser:
		return 0
	case RoleAdmin:
		return 1
	case RoleSuperAdmin:
		return 2
	default:
		return -1
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool { return r.rank() >= 0 }

// AtLeast reports whether r sits at or above min in the hierarchy.
// An unknown role never satisfies any requirement.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= 0 && r.rank() >= min.rank()
}

// ParseRole maps a stored role string onto a Role, tolerating case
// differences in existing rows.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}
