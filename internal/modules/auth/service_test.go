package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID, role, name string) (string, error) {
	return "token-" + userID, nil
}

func hashedUser(t *testing.T, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		Username:     username,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
	}
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "operations").
		Return(hashedUser(t, "operations", "ops123", domain.RoleOperations), nil)

	service := NewService(users, stubJWT{})

	result, err := service.Login(context.Background(), "Operations", "ops123")

	assert.NoError(t, err)
	assert.Equal(t, "token-u1", result.Token)
	assert.Equal(t, domain.RoleOperations, result.User.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "operations").
		Return(hashedUser(t, "operations", "ops123", domain.RoleOperations), nil)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), "operations", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_EmptyInput(t *testing.T) {
	service := NewService(new(MockUserRepository), stubJWT{})

	_, err := service.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.NotContains(t, hash, "secret")
}
