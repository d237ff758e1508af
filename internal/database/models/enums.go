package models

// UserRole defines the application role assigned to a generated user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

// Roles lists every role in the order the generator cycles through them.
func Roles() []UserRole {
	return []UserRole{UserRoleAdmin, UserRoleManager, UserRoleStaff}
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}
