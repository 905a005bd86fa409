package entity

// UserRole gates which menu and service operations a user may reach.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}
