package domain

import "time"

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleOperations      Role = "operations"
	RoleTechnician      Role = "technician"
	RoleCustomerService Role = "customer_service"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOperations, RoleTechnician, RoleCustomerService:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
