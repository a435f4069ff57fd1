package services

import (
	"context"
	"errors"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
	"github.com/newbienorbie/prostore/utils"
)

type AuthService struct {
	users repositories.UserStore
}

func NewAuthService(users repositories.UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.LoginResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "user",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) SignIn(ctx context.Context, req models.SignInRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
