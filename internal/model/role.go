package model

// Role codes carried on users and inside session tokens
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// IsKnownRole reports whether code is one of the built-in roles.
func IsKnownRole(code string) bool {
	switch code {
	case RoleAdmin, RoleSeller:
		return true
	}
	return false
}
