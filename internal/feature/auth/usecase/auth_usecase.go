package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shirtshop_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// maxUsernameLength matches the column size of users.username.
	maxUsernameLength = 64
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrUsernameTaken if the username already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the exact username.
	// It returns ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// validateRegistration checks username and password requirements.
func validateRegistration(username, password string) error {
	if username == "" || len(username) > maxUsernameLength {
		return fmt.Errorf("username must be between 1 and %d characters", maxUsernameLength)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password.
// A duplicate username surfaces as ErrUsernameTaken with no state mutated.
func (u *authUsecase) Register(ctx context.Context, username, password string) error {
	if err := validateRegistration(username, password); err != nil {
		return err
	}

	user := &entity.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns the user on success.
// Unknown username and wrong password both collapse into
// ErrInvalidCredentials. A bcrypt comparison runs even when the user does
// not exist so the two failures take comparable time.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		// Dummy hash compared when the user does not exist, keeping the
		// bcrypt call on every path.
		dummyHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
