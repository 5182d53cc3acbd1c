// Package token issues and verifies the signed bearer tokens used for
// session authentication. Tokens are stateless: there is no revocation
// list, and claims are not re-checked against current user state.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	pkgerrors "shop-service/pkg/errors"
)

// Claims is the signed token payload: the user's public identity plus
// the standard expiry fields.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager. ttl is the token lifetime
// measured from issuance.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token embedding the given identity.
func (m *Manager) Issue(userID, email, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
// Malformed, mis-signed and expired tokens all fail with an
// unauthorized error.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, pkgerrors.NewUnauthorizedError("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, pkgerrors.NewUnauthorizedError("Invalid token")
	}
	return claims, nil
}
