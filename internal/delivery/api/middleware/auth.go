package middleware

import (
	"slices"
	"strings"

	"forthecos/internal/delivery/api/response"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	bearerPrefix    = "Bearer "
	accessTokenType = "access"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Authorization header is missing")
		}

		claims, ok := m.parse(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		m.attach(c, claims)

		return next(c)
	}
}

// OptionalAuth attaches the caller when a valid access token is present and
// lets guests through otherwise. A malformed or expired token is treated as a guest.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := m.parse(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			m.attach(c, claims)
		}

		return next(c)
	}
}

// RequireRole checks the role set by Authenticate. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) parse(authHeader string) (*service.Claims, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims == nil || claims.Type != accessTokenType || claims.UserID == uuid.Nil {
		return nil, false
	}

	return claims, true
}

func (m *AuthMiddleware) attach(c echo.Context, claims *service.Claims) {
	SetIdentity(c, claims.UserID, claims.Roles)
}

// SetIdentity stores the caller on the echo and request contexts.
func SetIdentity(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRoles, roles)

	ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// GetPrincipal returns the caller, or nil for guests.
func GetPrincipal(c echo.Context) *usecase.Principal {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}
	roles, _ := GetRoles(c)

	return &usecase.Principal{
		UserID: userID,
		Roles:  entity.RolesFromStrings(roles),
	}
}
