package service

import (
	"errors"
	"time"
)

// Token verification failure kinds. Callers must distinguish the two because
// they map to different user-facing answers ("invalid token" vs "token
// expired").
var (
	// ErrTokenMalformed is returned when the token structure or signature is invalid.
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")

	// ErrTokenExpired is returned when a structurally valid token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the identity a verified token resolves to.
type Claims struct {
	UserID int64
	Email  string
}

// TokenService defines the interface for issuing and verifying the signed,
// self-contained bearer tokens that stand in for sessions. Tokens are
// stateless: their lifetime is bounded only by the expiry claim, and they
// cannot be revoked short of rotating the signing secret.
type TokenService interface {
	// Issue creates a signed token embedding the user identity and email,
	// expiring TTL() from now.
	Issue(userID int64, email string) (string, error)

	// Validate verifies the token's signature and expiry and decodes the
	// claims. Returns ErrTokenExpired or ErrTokenMalformed accordingly.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
