package repositories

import (
	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/naturetrails/trails-backend/models"
)

var validationAlgo = jwt.SigningMethodHS256

// TokenClaims is the wire format of every token the backend issues. Kind
// discriminates the credential variants; the other fields are only set for
// the kinds they belong to.
type TokenClaims struct {
	Kind  string `json:"kind"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JwtRepository struct {
	signingKey []byte
}

func NewJwtRepository(signingKey []byte) *JwtRepository {
	return &JwtRepository{signingKey: signingKey}
}

// EncodeToken signs claims with the backend's own key. Used for user,
// invitation and password reset tokens.
func (repo *JwtRepository) EncodeToken(claims TokenClaims) (string, error) {
	return jwt.NewWithClaims(validationAlgo, claims).SignedString(repo.signingKey)
}

// EncodeTokenWithSecret signs claims with an installation's shared secret.
func (repo *JwtRepository) EncodeTokenWithSecret(claims TokenClaims, secret []byte) (string, error) {
	return jwt.NewWithClaims(validationAlgo, claims).SignedString(secret)
}

// PeekClaims parses the claims without verifying the signature, so the caller
// can find out which key must verify the token. Never trust the result before
// ValidateTokenWithSecret succeeded.
func (repo *JwtRepository) PeekClaims(token string) (TokenClaims, error) {
	var claims TokenClaims
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		return TokenClaims{}, errors.Wrap(models.UnAuthorizedError, err.Error())
	}
	return claims, nil
}

func (repo *JwtRepository) ValidateToken(token string) (TokenClaims, error) {
	return repo.ValidateTokenWithSecret(token, repo.signingKey)
}

func (repo *JwtRepository) ValidateTokenWithSecret(token string, secret []byte) (TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != validationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return TokenClaims{}, errors.Wrap(models.UnAuthorizedError, err.Error())
	}
	return claims, nil
}
