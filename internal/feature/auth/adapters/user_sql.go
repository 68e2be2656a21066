// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shirtshop_backend/internal/feature/auth/domain/entity"
	"shirtshop_backend/internal/feature/auth/usecase"
	"shirtshop_backend/internal/platform/db"
)

// userSQL is a gorm implementation of the UserRepository interface.
type userSQL struct {
	db *gorm.DB
}

// Compile-time check to ensure userSQL implements UserRepository.
var _ usecase.UserRepository = (*userSQL)(nil)

// NewUserSQL creates a new userSQL instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserSQL(db *gorm.DB) *userSQL {
	return &userSQL{db: db}
}

// Create adds a user to the database.
// If a user with the same username already exists, it returns
// usecase.ErrUsernameTaken.
func (r *userSQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername retrieves a user by exact username.
// If the user does not exist, it returns usecase.ErrUserNotFound.
func (r *userSQL) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// If the user does not exist, it returns usecase.ErrUserNotFound.
func (r *userSQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
