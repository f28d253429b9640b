package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/auth"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/repository"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if role != "" {
		if !domain.ValidRole(role) {
			return nil, ErrValidation
		}
		return s.users.ListByRole(ctx, role)
	}
	return s.users.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create adds an account. Admin only; the unique index on username is the
// real uniqueness boundary, the repository maps its violation for us.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateUserRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" || req.Name == "" {
		return nil, ErrValidation
	}
	if !domain.ValidRole(req.Role) {
		return nil, ErrValidation
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// Update mutates an account. Admins may edit anyone; everyone else only
// themself, and never their own role.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateUserRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.ID != id {
		return nil, ErrForbidden
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(strings.ToLower(*req.Username))
		if username == "" {
			return nil, ErrValidation
		}
		u.Username = username
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrValidation
		}
		u.Name = *req.Name
	}
	if req.Role != nil {
		if actor.Role != domain.RoleAdmin {
			return nil, ErrForbidden
		}
		if !domain.ValidRole(*req.Role) {
			return nil, ErrValidation
		}
		u.Role = *req.Role
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, ErrValidation
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if actor.Role != domain.RoleAdmin {
		return ErrForbidden
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
