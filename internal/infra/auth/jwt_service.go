// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"jobhud/config"
	"jobhud/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Symmetric secret for HS256 signing.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It refuses an empty secret: tokens signed with a well-known default would
// be forgeable, so the process must not start without explicit configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token for a given user identity.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"email": email,
		"iat":   now.Unix(),            // Issued At
		"exp":   now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a token string and decodes the
// identity it carries. Expiry and malformed/tampered structure are reported
// as distinct errors because callers answer them differently.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, service.ErrTokenMalformed
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, service.ErrTokenMalformed
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	email, _ := mapClaims["email"].(string)

	return &service.Claims{
		UserID: userID,
		Email:  email,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
