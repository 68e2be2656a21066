package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberToken_MintAndParse(t *testing.T) {
	g := NewRememberToken("test-secret", time.Hour)

	signed, err := g.Mint(42, "mike")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := g.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRememberToken_Parse_WrongSecret(t *testing.T) {
	g := NewRememberToken("test-secret", time.Hour)
	other := NewRememberToken("other-secret", time.Hour)

	signed, err := g.Mint(42, "mike")
	require.NoError(t, err)

	_, err = other.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRememberToken_Parse_Expired(t *testing.T) {
	g := NewRememberToken("test-secret", -time.Hour)

	signed, err := g.Mint(42, "mike")
	require.NoError(t, err)

	_, err = g.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRememberToken_Parse_Garbage(t *testing.T) {
	g := NewRememberToken("test-secret", time.Hour)

	_, err := g.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRememberToken_Parse_RejectsNonHMAC(t *testing.T) {
	g := NewRememberToken("test-secret", time.Hour)

	// A token signed with "none" must not verify even if the claims look right.
	claims := jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = g.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
