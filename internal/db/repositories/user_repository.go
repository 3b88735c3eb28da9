package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-based user/account repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAccount retrieves a login account by username
func (r *UserRepository) GetAccount(ctx context.Context, username string) (*entities.Account, error) {
	var account entities.Account

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %s: %w", username, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return &account, nil
}

// CreateUser inserts a personnel entry
func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a personnel entry by id
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// ListUsers returns personnel entries, optionally filtered by a search needle
// matched against name, email, and username
func (r *UserRepository) ListUsers(ctx context.Context, search string) ([]entities.User, error) {
	q := r.db.WithContext(ctx).Model(&entities.User{})

	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(username) LIKE ?",
			needle, needle, needle,
		)
	}

	var users []entities.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SaveUser persists personnel field changes
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes a personnel entry by id
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, constants.ErrNotFound)
	}
	return nil
}
