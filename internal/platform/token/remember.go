// Package token mints and verifies the signed remember-me tokens behind
// the "remember" checkbox on the login form.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a remember-me token fails verification.
var ErrInvalidToken = errors.New("invalid remember token")

// RememberToken mints and parses HMAC-signed remember-me tokens.
type RememberToken struct {
	secret []byte
	ttl    time.Duration
}

// NewRememberToken creates a token generator with the provided secret and
// token lifetime.
func NewRememberToken(secret string, ttl time.Duration) *RememberToken {
	return &RememberToken{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (g *RememberToken) TTL() time.Duration {
	return g.ttl
}

// Mint creates a signed token identifying the given user.
func (g *RememberToken) Mint(userID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"exp":      time.Now().Add(g.ttl).Unix(),
		"iat":      time.Now().Unix(),
		"username": username,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies a token and returns the user ID it identifies.
func (g *RememberToken) Parse(tokenStr string) (uint, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}
