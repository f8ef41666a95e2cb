package middleware

import (
	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Principal is the authenticated caller
type Principal struct {
	UserID string
	Email  string
	Role   models.RoleType
}

// IsAdmin reports whether the caller has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth verifies the bearer token and stores the principal in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Swagger UI sometimes sends the token as a query parameter
			authHeader = c.Query("token")
		}
		if authHeader == "" {
			HandleAPIError(c, &apperrors.CustomError{
				Err:     apperrors.ErrUnauthorized,
				Message: "No token, authorization denied",
			})
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects callers whose role differs from requiredRole
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			return
		}

		if principal.Role != requiredRole {
			HandleAPIError(c, &apperrors.CustomError{
				Err:     apperrors.ErrPermissionDenied,
				Message: "Access denied",
				Details: map[string]interface{}{"requiredRole": string(requiredRole)},
			})
			return
		}

		c.Next()
	}
}

// CurrentPrincipal reads the principal stored by JWTAuth
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return Principal{}, false
	}
	role, _ := c.Get(ContextRole)
	roleType, ok := role.(models.RoleType)
	if !ok {
		return Principal{}, false
	}
	return Principal{
		UserID: userID,
		Email:  c.GetString(ContextEmail),
		Role:   roleType,
	}, true
}
