package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobhud/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTokenService struct {
	claims *service.Claims
	err    error
}

func (s *fixedTokenService) Issue(int64, string) (string, error) {
	return "", nil
}

func (s *fixedTokenService) Validate(string) (*service.Claims, error) {
	return s.claims, s.err
}

func (s *fixedTokenService) TTL() time.Duration {
	return time.Hour
}

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, c
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := &fixedTokenService{claims: &service.Claims{UserID: 7, Email: "ada@example.com"}}

	rec, c := invokeAuth(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	userID, ok := UserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "ada@example.com", c.Get(KeyUserEmail))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := invokeAuth(t, &fixedTokenService{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, _ := invokeAuth(t, &fixedTokenService{}, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := &fixedTokenService{err: service.ErrTokenExpired}

	rec, _ := invokeAuth(t, tokenSvc, "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	tokenSvc := &fixedTokenService{err: service.ErrTokenMalformed}

	rec, _ := invokeAuth(t, tokenSvc, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
