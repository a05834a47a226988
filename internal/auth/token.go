package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "fintrack/internal/errors"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

// Claims carries the user identity inside a signed token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 JWTs with a process-wide secret.
// Rotating the secret invalidates every outstanding token.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer. A non-positive ttl falls back to
// the default one hour.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token asserting the given user id, expiring after
// the issuer's TTL.
func (t *TokenIssuer) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token and returns the user id it asserts.
// Expired, malformed, and bad-signature tokens all fail with the same
// sentinel; callers cannot distinguish them and are not meant to.
func (t *TokenIssuer) Verify(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})

	if err != nil || !token.Valid {
		return 0, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}

	return claims.UserID, nil
}
