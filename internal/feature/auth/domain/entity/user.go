// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered user in the system.
// The plaintext password is never stored and never readable: SetPassword
// derives the salted hash and VerifyPassword checks a candidate against it.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique login name, at most 64 characters.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// SetPassword derives and stores the salted hash of the given plaintext.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// VerifyPassword reports whether the given plaintext matches the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
