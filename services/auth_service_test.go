package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/utils"
)

func setupAuthConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestSignUpRejectsTakenEmail(t *testing.T) {
	setupAuthConfig(t)
	users := new(mockUserStore)
	svc := NewAuthService(users)
	ctx := context.Background()

	users.On("FindByEmail", ctx, "jane@example.com").Return(&models.User{ID: "user-1"}, nil)

	_, err := svc.SignUp(ctx, models.SignUpRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"})

	assert.ErrorIs(t, err, models.ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUpCreatesUserWithHashedPassword(t *testing.T) {
	setupAuthConfig(t)
	users := new(mockUserStore)
	svc := NewAuthService(users)
	ctx := context.Background()

	users.On("FindByEmail", ctx, "jane@example.com").Return(nil, models.ErrUserNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	resp, err := svc.SignUp(ctx, models.SignUpRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	created := users.Calls[len(users.Calls)-1].Arguments.Get(1).(*models.User)
	assert.Equal(t, "user", created.Role)
	assert.NotEqual(t, "123456", created.Password, "password must be stored hashed")
	assert.True(t, utils.VerifyPassword(created.Password, "123456"))
}

func TestSignInWrongPassword(t *testing.T) {
	setupAuthConfig(t)
	users := new(mockUserStore)
	svc := NewAuthService(users)
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	users.On("FindByEmail", ctx, "jane@example.com").Return(&models.User{ID: "user-1", Email: "jane@example.com", Password: hash}, nil)

	_, err = svc.SignIn(ctx, models.SignInRequest{Email: "jane@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestSignInUnknownEmailSameError(t *testing.T) {
	setupAuthConfig(t)
	users := new(mockUserStore)
	svc := NewAuthService(users)
	ctx := context.Background()

	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, models.ErrUserNotFound)

	_, err := svc.SignIn(ctx, models.SignInRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestSignInSuccess(t *testing.T) {
	setupAuthConfig(t)
	users := new(mockUserStore)
	svc := NewAuthService(users)
	ctx := context.Background()

	hash, err := utils.HashPassword("123456")
	require.NoError(t, err)

	users.On("FindByEmail", ctx, "jane@example.com").Return(&models.User{
		ID: "user-1", Email: "jane@example.com", Password: hash, Role: "user",
	}, nil)

	resp, err := svc.SignIn(ctx, models.SignInRequest{Email: "jane@example.com", Password: "123456"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
