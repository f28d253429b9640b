package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == "" {
		u.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var adminActor = domain.Actor{ID: "admin-1", Name: "Admin", Role: domain.RoleAdmin}

func TestService_Create_AdminOnly(t *testing.T) {
	service := NewService(new(MockUserRepository))

	_, err := service.Create(context.Background(), domain.Actor{ID: "t1", Role: domain.RoleTechnician}, CreateUserRequest{
		Username: "newuser",
		Password: "secret1",
		Name:     "New User",
		Role:     domain.RoleTechnician,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users)

	u, err := service.Create(context.Background(), adminActor, CreateUserRequest{
		Username: "Tech3",
		Password: "tech123",
		Name:     "Technician 3",
		Role:     domain.RoleTechnician,
	})

	assert.NoError(t, err)
	assert.Equal(t, "tech3", u.Username)
	assert.NotEqual(t, "tech123", u.PasswordHash)
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateUsername)

	service := NewService(users)

	_, err := service.Create(context.Background(), adminActor, CreateUserRequest{
		Username: "operations",
		Password: "secret1",
		Name:     "Dup",
		Role:     domain.RoleOperations,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Create_UnknownRole(t *testing.T) {
	service := NewService(new(MockUserRepository))

	_, err := service.Create(context.Background(), adminActor, CreateUserRequest{
		Username: "x",
		Password: "secret1",
		Name:     "X",
		Role:     "manager",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_SelfCannotChangeRole(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "t1").Return(&domain.User{
		ID:       "t1",
		Username: "tech1",
		Name:     "Technician 1",
		Role:     domain.RoleTechnician,
	}, nil)

	service := NewService(users)

	newRole := domain.RoleAdmin
	_, err := service.Update(context.Background(),
		domain.Actor{ID: "t1", Role: domain.RoleTechnician},
		"t1",
		UpdateUserRequest{Role: &newRole})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_SelfNonRoleFields(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "t1").Return(&domain.User{
		ID:       "t1",
		Username: "tech1",
		Name:     "Technician 1",
		Role:     domain.RoleTechnician,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users)

	name := "Renamed"
	u, err := service.Update(context.Background(),
		domain.Actor{ID: "t1", Role: domain.RoleTechnician},
		"t1",
		UpdateUserRequest{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, domain.RoleTechnician, u.Role)
}

func TestService_Update_OtherUserForbidden(t *testing.T) {
	service := NewService(new(MockUserRepository))

	name := "Hijack"
	_, err := service.Update(context.Background(),
		domain.Actor{ID: "t1", Role: domain.RoleTechnician},
		"t2",
		UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Delete_AdminOnly(t *testing.T) {
	service := NewService(new(MockUserRepository))

	err := service.Delete(context.Background(), domain.Actor{ID: "o1", Role: domain.RoleOperations}, "t1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Delete_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users)

	err := service.Delete(context.Background(), adminActor, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
