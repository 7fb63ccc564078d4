package repositories

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/models"
)

func userClaims(lifetime time.Duration) TokenClaims {
	return TokenClaims{
		Kind: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJwtRepositoryRoundTrip(t *testing.T) {
	repo := NewJwtRepository([]byte("test-signing-key"))
	claims := userClaims(time.Hour)

	token, err := repo.EncodeToken(claims)
	require.NoError(t, err)

	validated, err := repo.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user", validated.Kind)
	assert.Equal(t, claims.Subject, validated.Subject)
}

func TestJwtRepositoryRejectsWrongKey(t *testing.T) {
	repo := NewJwtRepository([]byte("test-signing-key"))
	other := NewJwtRepository([]byte("another-signing-key"))

	token, err := other.EncodeToken(userClaims(time.Hour))
	require.NoError(t, err)

	_, err = repo.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepositoryRejectsExpiredToken(t *testing.T) {
	repo := NewJwtRepository([]byte("test-signing-key"))

	token, err := repo.EncodeToken(userClaims(-time.Hour))
	require.NoError(t, err)

	_, err = repo.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepositoryPeekClaims(t *testing.T) {
	repo := NewJwtRepository([]byte("test-signing-key"))
	secret := []byte("per-installation-secret")
	installationId := uuid.NewString()

	token, err := repo.EncodeTokenWithSecret(TokenClaims{
		Kind: "installation",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   installationId,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, secret)
	require.NoError(t, err)

	// Peek exposes the subject so the right verification key can be looked
	// up, but only the per-secret validation is authoritative.
	peeked, err := repo.PeekClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "installation", peeked.Kind)
	assert.Equal(t, installationId, peeked.Subject)

	_, err = repo.ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)

	validated, err := repo.ValidateTokenWithSecret(token, secret)
	require.NoError(t, err)
	assert.Equal(t, installationId, validated.Subject)
}
