package domain

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleVendor   UserRole = "vendor"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	ID       uint64
	Login    string
	Password string
	Role     UserRole
}
