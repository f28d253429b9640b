package auth

import "github.com/muhammedeluveyfi-prog/josck-system/internal/domain"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type VerifyResponse struct {
	Valid bool         `json:"valid"`
	User  *domain.User `json:"user"`
}
