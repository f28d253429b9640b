package user

import "github.com/muhammedeluveyfi-prog/josck-system/internal/domain"

type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,min=3"`
	Password string      `json:"password" validate:"required,min=6"`
	Name     string      `json:"name" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=admin operations technician customer_service"`
}

// UpdateUserRequest carries only the fields the caller wants changed.
// Role changes are admin-only; a non-empty Password re-hashes.
type UpdateUserRequest struct {
	Username *string      `json:"username,omitempty"`
	Password *string      `json:"password,omitempty"`
	Name     *string      `json:"name,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
}
