package domain

// User roles
const (
	RoleCustomer = "CUSTOMER"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
	RoleCreator  = "CREATOR"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleManager, RoleAdmin, RoleCreator:
		return true
	}
	return false
}
