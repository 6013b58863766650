package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
	mocks "forthecos/internal/mocks/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func captureHandler(seen **usecase.Principal) echo.HandlerFunc {
	return func(c echo.Context) error {
		*seen = GetPrincipal(c)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user", "admin"},
		Type:   "access",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer good")

	var seen *usecase.Principal
	require.NoError(t, m.Authenticate(captureHandler(&seen))(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.True(t, seen.IsAdmin())
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		claims *service.Claims
		err    error
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer bad", err: errors.New("signature is invalid")},
		{name: "refresh token", header: "Bearer bad", claims: &service.Claims{UserID: uuid.New(), Type: "refresh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService(t)
			if tt.claims != nil || tt.err != nil {
				tokenSvc.EXPECT().ValidateToken("bad").Return(tt.claims, tt.err)
			}

			m := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(tt.header)

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestOptionalAuth_GuestPassesThrough(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	seen := &usecase.Principal{}
	require.NoError(t, m.OptionalAuth(captureHandler(&seen))(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)

	c, rec = newAuthContext("Bearer expired")
	seen = &usecase.Principal{}
	require.NoError(t, m.OptionalAuth(captureHandler(&seen))(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mocks.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, rec := newAuthContext("")
	SetIdentity(c, uuid.New(), []string{entity.RoleUser.String()})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body["error"]["code"])

	c, rec = newAuthContext("")
	SetIdentity(c, uuid.New(), []string{entity.RoleUser.String(), entity.RoleAdmin.String()})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
