package usecase

import (
	"context"
	"fmt"
)

// TokenParser verifies a remember-me token signature and extracts the user
// ID it carries.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/token).
type TokenParser interface {
	Parse(token string) (uint, error)
}

// rememberParser validates remember-me tokens against the user store, so a
// token minted for a since-deleted user cannot re-establish a session.
type rememberParser struct {
	tokens TokenParser
	users  UserRepository
}

// NewRememberParser creates a new rememberParser instance.
func NewRememberParser(tokens TokenParser, users UserRepository) *rememberParser {
	return &rememberParser{tokens: tokens, users: users}
}

// Parse verifies the token and confirms the user it names still exists.
func (p *rememberParser) Parse(ctx context.Context, token string) (uint, error) {
	id, err := p.tokens.Parse(token)
	if err != nil {
		return 0, err
	}
	if _, err := p.users.FindByID(ctx, id); err != nil {
		return 0, fmt.Errorf("remembered user %d: %w", id, err)
	}
	return id, nil
}
