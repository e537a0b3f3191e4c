package middleware

import (
	"strings"

	"jobhud/internal/delivery/http/response"
	"jobhud/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyUserID is the echo.Context key holding the authenticated user's ID.
	KeyUserID = "userID"

	// KeyUserEmail is the echo.Context key holding the authenticated user's email.
	KeyUserEmail = "userEmail"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved identity
// on the context. Expired and malformed tokens get distinct error codes so
// clients know whether to re-login or fix the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := ExtractBearerToken(c)
		if err != nil {
			return response.Unauthorized(c, "MISSING_TOKEN", err.Error())
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, "TOKEN_EXPIRED", "Token expired, please login again")
			}

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or malformed token")
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserEmail, claims.Email)

		return next(c)
	}
}

// ExtractBearerToken pulls the raw token out of the Authorization header.
func ExtractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", errors.New("Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}

// UserIDFromContext reads the authenticated user ID set by Authenticate.
func UserIDFromContext(c echo.Context) (int64, bool) {
	userID, ok := c.Get(KeyUserID).(int64)

	return userID, ok
}
