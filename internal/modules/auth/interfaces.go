package auth

import (
	"context"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// UserRepository is the slice of the user store the auth flow needs.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
