package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// UserService manages the chief's personnel roster.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser adds a personnel entry to the roster.
func (s *UserService) CreateUser(ctx context.Context, req dtos.UpsertUserRequest) (*entities.User, error) {
	if req.Name == "" || req.Role == "" {
		return nil, fmt.Errorf("name and role are required: %w", constants.ErrValidation)
	}

	user := &entities.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Status:   req.Status,
		Username: req.Username,
		Password: req.Password,
	}
	if user.Status == "" {
		user.Status = "Active"
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns roster entries matching the search needle.
func (s *UserService) ListUsers(ctx context.Context, search string) ([]entities.User, error) {
	return s.users.ListUsers(ctx, search)
}

// UpdateUser overwrites the editable fields of a roster entry.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dtos.UpsertUserRequest) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		user.Password = req.Password
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a roster entry.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteUser(ctx, id)
}
