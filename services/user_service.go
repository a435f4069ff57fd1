package services

import (
	"context"
	"errors"
	"math"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
)

const UserPageSize = 10

type UserService struct {
	users repositories.UserStore
}

func NewUserService(users repositories.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PaymentMethod == "" {
		user.PaymentMethod = models.DefaultPaymentMethod
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	return s.users.UpdateName(ctx, userID, req.Name)
}

func (s *UserService) UpdateAddress(ctx context.Context, userID string, address *models.ShippingAddress) error {
	return s.users.UpdateAddress(ctx, userID, address)
}

func (s *UserService) UpdatePaymentMethod(ctx context.Context, userID string, req models.PaymentMethodRequest) error {
	method := models.NormalizePaymentMethod(req.Type)
	if method == "" {
		return errors.New("invalid payment method")
	}
	return s.users.UpdatePaymentMethod(ctx, userID, method)
}

func (s *UserService) GetAllUsers(ctx context.Context, query string, page int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.users.List(ctx, query, page, UserPageSize)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      UserPageSize,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(UserPageSize))),
		},
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) error {
	return s.users.UpdateNameAndRole(ctx, id, req.Name, req.Role)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
