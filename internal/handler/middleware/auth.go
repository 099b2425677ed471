package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-front-desk/internal/handler/httperr"
	"hotel-front-desk/internal/pkg/cookie"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/pkg/jwt"
	"hotel-front-desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectIDKey   = "subject_id"
	ctxSubjectRoleKey = "subject_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		subjectID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setSubject(c, subjectID, role)
		c.Next()
	}
}

// RequireRole is used after RequireAuth. Staff and customer portals do not
// overlap, so there is no role hierarchy: the token role must match exactly.
func (m *AuthMiddleware) RequireRole(required jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetSubjectRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				errs.New("subject role missing from context"), "Internal server error", nil)
			return
		}

		if role != required {
			httperr.AbortWithError(c, http.StatusForbidden,
				errs.Newf("role %s cannot access %s routes", role, required), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.RequireRole(jwt.RoleStaff)
}

func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return m.RequireRole(jwt.RoleCustomer)
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		subjectID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setSubject(c, subjectID, role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setSubject(c *gin.Context, subjectID uuid.UUID, role jwt.Role) {
	c.Set(ctxSubjectIDKey, subjectID)
	c.Set(ctxSubjectRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"subject_id": subjectID.String(),
		"role":       string(role),
	})
}

func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	subjectID, exists := c.Get(ctxSubjectIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := subjectID.(uuid.UUID)
	return id, ok
}

func GetSubjectRole(c *gin.Context) (jwt.Role, bool) {
	subjectRole, exists := c.Get(ctxSubjectRoleKey)
	if !exists {
		return "", false
	}

	role, ok := subjectRole.(jwt.Role)
	return role, ok
}
